// Package production provides host integrations for widget contexts:
// snapshot persistence, change publishing and chart visualization.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/headless"
)

// Persister stores widget snapshots keyed by context id.
type Persister interface {
	Save(ctx context.Context, snap headless.Snapshot) error
	Load(ctx context.Context, contextID string) (headless.Snapshot, error)
}

// NewPersister returns the persister for format ("json" or "yaml") rooted at dir.
func NewPersister(format, dir string) (Persister, error) {
	switch format {
	case "json":
		return NewJSONPersister(dir)
	case "yaml":
		return NewYAMLPersister(dir)
	}
	return nil, fmt.Errorf("unknown snapshot format %q", format)
}

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, snap headless.Snapshot) error {
	fn, err := snapshotPath(p.dir, snap.ContextID, ".json")
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return writeFile(ctx, fn, data)
}

func (p *JSONPersister) Load(ctx context.Context, contextID string) (headless.Snapshot, error) {
	fn, err := snapshotPath(p.dir, contextID, ".json")
	if err != nil {
		return headless.Snapshot{}, err
	}
	data, err := readFile(ctx, fn, contextID)
	if err != nil {
		return headless.Snapshot{}, err
	}
	var snap headless.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return headless.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return checkLoaded(snap, contextID)
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, snap headless.Snapshot) error {
	fn, err := snapshotPath(p.dir, snap.ContextID, ".yaml")
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return writeFile(ctx, fn, data)
}

func (p *YAMLPersister) Load(ctx context.Context, contextID string) (headless.Snapshot, error) {
	fn, err := snapshotPath(p.dir, contextID, ".yaml")
	if err != nil {
		return headless.Snapshot{}, err
	}
	data, err := readFile(ctx, fn, contextID)
	if err != nil {
		return headless.Snapshot{}, err
	}
	var snap headless.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return headless.Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return checkLoaded(snap, contextID)
}

func snapshotPath(dir, contextID, ext string) (string, error) {
	if contextID == "" || strings.ContainsAny(contextID, `/\`) || contextID == "." || contextID == ".." {
		return "", fmt.Errorf("invalid context id %q", contextID)
	}
	return filepath.Join(dir, contextID+ext), nil
}

func writeFile(ctx context.Context, fn string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func readFile(ctx context.Context, fn, contextID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("context %q: %w", contextID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

func checkLoaded(snap headless.Snapshot, contextID string) (headless.Snapshot, error) {
	if snap.Kind == "" {
		return headless.Snapshot{}, fmt.Errorf("context %q: snapshot has no kind", contextID)
	}
	snap.ContextID = contextID
	return snap, nil
}
