package boards

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
	"gopkg.in/yaml.v3"
)

func TestBuiltinPresets(t *testing.T) {
	ids, err := NewLoader("").ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"classic", "infinite"}) {
		t.Errorf("ListIDs() = %v, want [classic infinite]", ids)
	}
}

func TestClassicIsStandardOpening(t *testing.T) {
	p, err := NewLoader("").LoadByID("")
	if err != nil {
		t.Fatalf("LoadByID(\"\") failed: %v", err)
	}
	if p.ID != DefaultID {
		t.Fatalf("default preset = %q, want %q", p.ID, DefaultID)
	}

	b, err := p.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if !reflect.DeepEqual(b.Serialize(), core.New().Serialize()) {
		t.Error("classic preset differs from the standard opening")
	}
}

func TestInfinitePreset(t *testing.T) {
	p, err := NewLoader("").LoadByID("infinite")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if len(p.Tiles) != 56 {
		t.Errorf("len(Tiles) = %d, want 56", len(p.Tiles))
	}
	if got := p.Tiles.ActiveCount(); got != 12 {
		t.Errorf("ActiveCount() = %d, want 12", got)
	}
	if p.Source != "builtin:infinite.yaml" {
		t.Errorf("Source = %q", p.Source)
	}

	b, err := p.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if b.Status() != core.StatusPlaying || !b.HasMatches() {
		t.Errorf("infinite board is not playable: status %s", b.Status())
	}
}

func TestLoaderDirectory(t *testing.T) {
	l := NewLoader("testdata")

	presets, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	var ids []string
	for _, p := range presets {
		ids = append(ids, p.ID)
	}
	// broken.yaml is skipped.
	if !reflect.DeepEqual(ids, []string{"classic", "infinite", "pairs"}) {
		t.Fatalf("ids = %v, want [classic infinite pairs]", ids)
	}

	classic, err := l.LoadByID("classic")
	if err != nil {
		t.Fatal(err)
	}
	if classic.Name != "Classic (local)" {
		t.Errorf("directory preset did not override built-in: %q", classic.Name)
	}

	pairs, err := l.LoadByID("pairs")
	if err != nil {
		t.Fatal(err)
	}
	b, err := pairs.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	if b.EdgePolicy() != core.EdgeRowBounded {
		t.Errorf("EdgePolicy() = %s, want row_bounded", b.EdgePolicy())
	}

	over, err := pairs.NewBoard(core.WithEdgePolicy(core.EdgeWrap))
	if err != nil {
		t.Fatal(err)
	}
	if over.EdgePolicy() != core.EdgeWrap {
		t.Errorf("caller option did not override preset policy")
	}
}

func TestLoadByIDNotFound(t *testing.T) {
	_, err := NewLoader("testdata").LoadByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID() error = %v, want ErrNotFound", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	ids, err := NewLoader(filepath.Join(t.TempDir(), "nope")).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ListIDs() = %v, want built-ins only", ids)
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"minimal", "id: x", false},
		{"no id", "name: nameless", true},
		{"bad policy", "id: x\nedge_policy: diagonal", true},
		{"bad value", "id: x\ntiles:\n  - {x: 0, y: 0, v: 11, active: true}", true},
		{"no live tiles", "id: x\ntiles:\n  - {x: 0, y: 0, v: 1, active: false}", true},
		{"not yaml", "id: [", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPresetYAMLRoundTrip(t *testing.T) {
	p, err := NewLoader("testdata").LoadFile(filepath.Join("testdata", "custom.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	back, err := NewLoader("").LoadFile(path)
	if err != nil {
		t.Fatalf("reloading exported preset: %v", err)
	}
	if back.ID != p.ID || back.EdgePolicy != p.EdgePolicy || !reflect.DeepEqual(back.Tiles, p.Tiles) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, p)
	}
}
