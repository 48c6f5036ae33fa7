package touchscript

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OpenTraceLab/multislider/pkg/slider"
)

const dragScript = `
# two thumbs, drag the first
size 232 48
padding 16 0 16 0
scrolling

down 0 66 24
move 0 96 24   # 40
pointer-down 1 216 24
move 1 166.5 24
pointer-up 1 166.5 24
up 0 96 24
cancel
`

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return p
}

func TestParseSetup(t *testing.T) {
	s, err := mustParser(t).ParseString(dragScript)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	want := Setup{Width: 232, Height: 48, Padding: slider.Insets{Left: 16, Right: 16}, Scrolling: true}
	if s.Setup != want {
		t.Fatalf("Setup = %+v, want %+v", s.Setup, want)
	}
	if len(s.Events) != 7 {
		t.Fatalf("Expected 7 events, got %d", len(s.Events))
	}

	first := s.Events[0]
	if first.Action != slider.TouchDown || first.Pointer != 0 || first.X != 66 || first.Line != 7 {
		t.Errorf("first event = %+v", first)
	}
	if ev := s.Events[3]; ev.Action != slider.TouchMove || ev.Pointer != 1 || ev.X != 166.5 {
		t.Errorf("event 3 = %+v", ev)
	}
	if ev := s.Events[6]; ev.Action != slider.TouchCancel {
		t.Errorf("last event = %+v, want cancel", ev)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := mustParser(t).ParseString("down 3 10 10\nup 3 20 10\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if s.Setup != DefaultSetup {
		t.Fatalf("Setup = %+v, want defaults", s.Setup)
	}
	h := s.Host()
	if h.Width != 400 || h.Height != 48 || h.RightToLeft || h.Scrolling {
		t.Fatalf("Host() = %+v", h)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown keyword", "hover 0 1 1", false},
		{"missing coordinate", "down 0 1", false},
		{"fractional pointer", "down 0.5 1 1", false},
		{"zero size", "size 0 10", true},
		{"move before down", "move 0 1 1", true},
		{"double down", "down 0 1 1\ndown 1 2 2", true},
		{"pointer-down alone", "pointer-down 1 1 1", true},
		{"up with others active", "down 0 1 1\npointer-down 1 1 1\nup 0 1 1", true},
		{"pointer-up of last", "down 0 1 1\npointer-up 0 1 1", true},
		{"move after cancel", "down 0 1 1\ncancel\nmove 0 2 2", true},
	}

	p := mustParser(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.ParseString(tc.input)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded", tc.input)
			}
			if got := errors.Is(err, ErrInvalidScript); got != tc.invalid {
				t.Fatalf("errors.Is(ErrInvalidScript) = %v for %v", got, err)
			}
		})
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	_, err := mustParser(t).ParseString("size 100 20\n\nmove 4 1 1\n")
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error = %v, want a line 3 reference", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.touch")
	if err := os.WriteFile(path, []byte(dragScript), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := mustParser(t).ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(s.Events) != 7 {
		t.Fatalf("Expected 7 events, got %d", len(s.Events))
	}

	if _, err := mustParser(t).ParseFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("ParseFile on a missing file succeeded")
	}
}

func TestParseFileLogsToCurrentLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.touch")
	if err := os.WriteFile(path, []byte(dragScript), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	oldLogger, oldLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	}()

	if _, err := mustParser(t).ParseFile(path); err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "script loaded") || !strings.Contains(out, `"module":"touchscript"`) {
		t.Fatalf("log output = %q, want the script loaded line", out)
	}
}
