package typeface

import "errors"

var (
	// ErrResourceUnavailable — файл шрифта отсутствует, не читается или не разбирается.
	ErrResourceUnavailable = errors.New("typeface: font resource unavailable")

	// ErrRasterize — растеризатор отклонил входные данные.
	ErrRasterize = errors.New("typeface: rasterize failed")

	// ErrSessionClosed — сессия уже закрыта.
	ErrSessionClosed = errors.New("typeface: session closed")
)
