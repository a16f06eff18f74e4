package banner

import (
	"runtime"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	got := Format([]Entry{
		{Label: "SDL version", Version: "1.2.3"},
		{Label: "SDL linker", Version: "1.2.4"},
		{Label: "SDL_TTF ver.", Version: "2.0.15"},
	})
	want := "SDL version  : 1.2.3\n" +
		"SDL linker   : 1.2.4\n" +
		"SDL_TTF ver. : 2.0.15\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasSuffix(info, "\n") {
		t.Errorf("Info() = %q, want trailing newline", info)
	}
	lines := strings.Split(strings.TrimSuffix(info, "\n"), "\n")
	if len(lines) != 1+len(tracked) {
		t.Fatalf("Info() has %d lines, want %d: %q", len(lines), 1+len(tracked), info)
	}
	if !strings.Contains(lines[0], runtime.Version()) {
		t.Errorf("first line %q does not mention %s", lines[0], runtime.Version())
	}
	sep := strings.Index(lines[0], " : ")
	for _, l := range lines[1:] {
		if strings.Index(l, " : ") != sep {
			t.Errorf("line %q is not aligned with %q", l, lines[0])
		}
	}
}
