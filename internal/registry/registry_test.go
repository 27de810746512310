package registry

import (
	"testing"

	"github.com/vovakirdan/spacetris/internal/world"
)

func TestBuiltinPresets(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d presets, expected at least 2", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	classic, err := Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultID, err)
	}
	if classic.Rows != 20 || classic.Columns != 10 {
		t.Errorf("classic = %dx%d, expected 20x10", classic.Rows, classic.Columns)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("Get() of unknown preset should fail")
	}
	if Exists("nope") {
		t.Error("Exists() of unknown preset should be false")
	}
	if !Exists("compact") {
		t.Error("Exists(compact) should be true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate ID should panic")
		}
	}()
	Register(Preset{ID: "classic", Rows: 20, Columns: 10})
}

func TestRegisterTooSmallPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of a 3-column field should panic")
		}
	}()
	Register(Preset{ID: "tiny", Rows: 20, Columns: 3})
}

func TestCreateUsesPresetSize(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Rows, cfg.Columns = 0, 0
	cfg.MaxNameLength = 8

	w, err := Create("compact", cfg, world.WithSeed(1))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if w.Grid().Rows() != 16 || w.Grid().Columns() != 10 {
		t.Errorf("grid = %dx%d, expected 16x10", w.Grid().Rows(), w.Grid().Columns())
	}
	if w.Config().MaxNameLength != 8 {
		t.Errorf("MaxNameLength = %d, expected 8", w.Config().MaxNameLength)
	}

	cfg.Columns = 12
	w, err = Create("compact", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if w.Grid().Rows() != 16 || w.Grid().Columns() != 12 {
		t.Errorf("grid = %dx%d, expected 16x12 with a column override", w.Grid().Rows(), w.Grid().Columns())
	}

	if _, err := Create("nope", cfg); err == nil {
		t.Error("Create() of unknown preset should fail")
	}
}
