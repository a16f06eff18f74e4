// internal/banner/banner.go
package banner

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// Entry — одна строка баннера: подпись и версия
type Entry struct {
	Label   string
	Version string
}

// tracked — модули, версии которых показываются в баннере
var tracked = []struct {
	label string
	path  string
}{
	{"Ebiten ver.", "github.com/hajimehoshi/ebiten/v2"},
	{"x/image ver.", "golang.org/x/image"},
}

// Info возвращает текст баннера: версия Go и версии подключённых библиотек.
// Каждая строка завершается '\n'.
func Info() string {
	entries := []Entry{{Label: "Go version", Version: runtime.Version()}}

	deps := map[string]string{}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Replace != nil {
				dep = dep.Replace
			}
			deps[dep.Path] = dep.Version
		}
	}
	for _, t := range tracked {
		v, ok := deps[t.path]
		if !ok || v == "" {
			v = unknownVersion
		}
		entries = append(entries, Entry{Label: t.label, Version: v})
	}
	return Format(entries)
}

// Format выравнивает подписи по самой длинной и собирает строки "label : version\n".
func Format(entries []Entry) string {
	width := 0
	for _, e := range entries {
		if len(e.Label) > width {
			width = len(e.Label)
		}
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s : %s\n", width, e.Label, e.Version)
	}
	return b.String()
}
