package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-numbers/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(6, 0, "green", core.ColorGreen)
	s.DrawTextColor(0, 1, "?", core.Color(200)) // Unknown colours fall back to default

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"plain", "green", "?"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
