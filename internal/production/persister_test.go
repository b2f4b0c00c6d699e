// Tests for the JSON and YAML snapshot persisters.
package production

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/comalice/headless"
)

func tooltipSnapshot(t *testing.T) headless.Snapshot {
	t.Helper()
	tip, err := headless.NewTooltip(headless.WithID("help"))
	if err != nil {
		t.Fatal(err)
	}
	tip.SetDelays(250*time.Millisecond, 40*time.Millisecond)
	tip.Open()
	snap, err := tip.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

func TestPersisters_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			p, err := NewPersister(format, t.TempDir())
			if err != nil {
				t.Fatal(err)
			}
			ctx := context.Background()
			if err := p.Save(ctx, tooltipSnapshot(t)); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded, err := p.Load(ctx, "help")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.Kind != "tooltip" || loaded.Mode != headless.ModeOpen {
				t.Errorf("loaded %q in mode %q", loaded.Kind, loaded.Mode)
			}

			tip, err := headless.NewTooltip()
			if err != nil {
				t.Fatal(err)
			}
			if err := tip.Restore(loaded); err != nil {
				t.Fatalf("Restore: %v", err)
			}
			openAfter, closeAfter := tip.Delays()
			if openAfter != 250*time.Millisecond || closeAfter != 40*time.Millisecond {
				t.Errorf("delays = %v, %v", openAfter, closeAfter)
			}
			if !tip.IsOpen() {
				t.Error("restored tooltip should be open")
			}
		})
	}
}

func TestPersisters_FileNames(t *testing.T) {
	dir := t.TempDir()
	j, _ := NewJSONPersister(dir)
	y, _ := NewYAMLPersister(dir)
	snap := tooltipSnapshot(t)
	ctx := context.Background()

	if err := j.Save(ctx, snap); err != nil {
		t.Fatal(err)
	}
	if err := y.Save(ctx, snap); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"help.json", "help.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestPersisters_LoadMissing(t *testing.T) {
	p, _ := NewJSONPersister(t.TempDir())
	_, err := p.Load(context.Background(), "ghost")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestPersisters_RejectBadIDs(t *testing.T) {
	p, _ := NewYAMLPersister(t.TempDir())
	for _, id := range []string{"", "../escape", `a\b`, ".."} {
		if err := p.Save(context.Background(), headless.Snapshot{ContextID: id, Kind: "dialog"}); err == nil {
			t.Errorf("Save(%q) should fail", id)
		}
	}
}

func TestPersisters_RejectKindless(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bare.json"), []byte(`{"state":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, _ := NewJSONPersister(dir)
	if _, err := p.Load(context.Background(), "bare"); err == nil {
		t.Error("Expected error for snapshot without kind")
	}
}

func TestNewPersister_UnknownFormat(t *testing.T) {
	if _, err := NewPersister("xml", t.TempDir()); err == nil {
		t.Error("Expected error for unknown format")
	}
}
