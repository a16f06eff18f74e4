// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640 // логический размер кадра
	ScreenHeight = 480
	WindowWidth  = ScreenWidth / 2 // окно вдвое меньше кадра
	WindowHeight = ScreenHeight / 2
	WindowTitle  = "Hello Banner!"

	DefaultFontPath = "/usr/share/fonts/truetype/liberation/LiberationSansNarrow-Bold.ttf"
	FontEnvVar      = "BANNER_FONT"

	BannerFontSize = 12
	BannerX        = 75
	BannerY        = 300
	BannerLineGap  = 4 // шаг строки = кегль + зазор

	InputGraceSeconds = 1.0 // ввод игнорируется первую секунду
	PollTPS           = 10  // опрос событий каждые 100 мс
	MaxDeltaTime      = 0.5
)

var (
	BackgroundColor = color.RGBA{0x80, 0x80, 0x80, 255} // серый холст
	White           = color.RGBA{0xff, 0xff, 0xff, 255}
	Black           = color.RGBA{0x00, 0x00, 0x00, 255}
	Blue            = color.RGBA{0x00, 0x00, 0xa0, 255}
	Magenta         = color.RGBA{0xff, 0x00, 0xff, 255}
)

// TextSpec — одна строка текста в кадре
type TextSpec struct {
	Text       string `json:"text"`
	Size       int    `json:"size"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Foreground Color  `json:"foreground"`
	Background Color  `json:"background"`
}

// BlockSpec — многострочный блок (баннер версий)
type BlockSpec struct {
	Size       int   `json:"size"`
	X          int   `json:"x"`
	Y          int   `json:"y"`
	Spacing    int   `json:"spacing"`
	Foreground Color `json:"foreground"`
	Background Color `json:"background"`
}

// Config — настройки программы. Поля, отсутствующие в файле, сохраняют значения
// по умолчанию; списки заменяются целиком.
type Config struct {
	WindowTitle  string     `json:"window_title"`
	ScreenWidth  int        `json:"screen_width"`
	ScreenHeight int        `json:"screen_height"`
	WindowWidth  int        `json:"window_width"`
	WindowHeight int        `json:"window_height"`
	FontPath     string     `json:"font_path"`
	Bold         bool       `json:"bold"`
	Background   Color      `json:"background"`
	Headlines    []TextSpec `json:"headlines"`
	Banner       BlockSpec  `json:"banner"`
	InputGrace   float64    `json:"input_grace_seconds"`
}

// Default возвращает конфигурацию исходной демки: две строки заголовка
// и баннер версий под ними.
func Default() *Config {
	return &Config{
		WindowTitle:  WindowTitle,
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		FontPath:     DefaultFontPath,
		Bold:         true,
		Background:   Color(BackgroundColor),
		Headlines: []TextSpec{
			// белым по синему
			{Text: "Hello Betsy! ", Size: 48, X: 50, Y: 50, Foreground: Color(White), Background: Color(Blue)},
			// чёрным по пурпурному
			{Text: "LiberationSansNarrow @ (x=200, y=175)", Size: 16, X: 200, Y: 175, Foreground: Color(Black), Background: Color(Magenta)},
		},
		Banner: BlockSpec{
			Size:       BannerFontSize,
			X:          BannerX,
			Y:          BannerY,
			Spacing:    BannerFontSize + BannerLineGap,
			Foreground: Color(White),
			Background: Color(Black),
		},
		InputGrace: InputGraceSeconds,
	}
}
