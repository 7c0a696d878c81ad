// Package manifest records printed snapshots of an ESTree input so that successive versions can be
// compared.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrModified = errors.New("snapshot modified since it was recorded")

// Settings are the printer options a snapshot was produced with.
type Settings struct {
	Format         string `yaml:"format" json:"format"`
	Indent         string `yaml:"indent" json:"indent"`
	MaxInlineWidth int    `yaml:"max_inline_width" json:"max_inline_width"`
	Verified       bool   `yaml:"verified,omitempty" json:"verified,omitempty"`
}

// Snapshot is one printed source file recorded in the manifest.
type Snapshot struct {
	Name     string   `yaml:"name" json:"name"`
	Version  string   `yaml:"version" json:"version"`
	File     string   `yaml:"file" json:"file"`
	Input    string   `yaml:"input,omitempty" json:"input,omitempty"`
	Digest   string   `yaml:"digest,omitempty" json:"digest,omitempty"`
	Settings Settings `yaml:"settings" json:"settings"`
}

// Digest returns the content digest recorded for printed output.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// Read returns the contents of the snapshot file, failing with ErrModified when they no longer match
// the recorded digest. Snapshots recorded without a digest are not checked.
func (s *Snapshot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.File)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.Version, err)
	}
	if s.Digest != "" && Digest(data) != s.Digest {
		return nil, fmt.Errorf("%w: %s (%s)", ErrModified, s.Version, s.File)
	}
	return data, nil
}

// Manifest tracks the printed snapshots of an ESTree input over time.
type Manifest struct {
	CurrentVersion  string     `yaml:"current_version" json:"current_version"`
	PreviousVersion string     `yaml:"previous_version" json:"previous_version"`
	Snapshots       []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// Load reads a manifest. A missing file yields an empty manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the manifest next to path and renames it into place.
func (m *Manifest) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// AddSnapshot records s as the current version. Re-recording the current version replaces its entry
// without moving the previous pointer.
func (m *Manifest) AddSnapshot(s Snapshot) {
	if m.CurrentVersion != "" && m.CurrentVersion != s.Version {
		m.PreviousVersion = m.CurrentVersion
	}
	m.CurrentVersion = s.Version

	if old := m.Lookup(s.Version); old != nil && old.Name == s.Name {
		*old = s
		return
	}
	m.Snapshots = append(m.Snapshots, s)
}

// Lookup returns the snapshot recorded for version, or nil.
func (m *Manifest) Lookup(version string) *Snapshot {
	for i := range m.Snapshots {
		if m.Snapshots[i].Version == version {
			return &m.Snapshots[i]
		}
	}
	return nil
}

// SnapshotFile returns the path recorded for version, or "".
func (m *Manifest) SnapshotFile(version string) string {
	if s := m.Lookup(version); s != nil {
		return s.File
	}
	return ""
}

// Pair returns the previous and current snapshots, or nil when either is not recorded.
func (m *Manifest) Pair() (previous, current *Snapshot) {
	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return nil, nil
	}
	previous, current = m.Lookup(m.PreviousVersion), m.Lookup(m.CurrentVersion)
	if previous == nil || current == nil {
		return nil, nil
	}
	return previous, current
}
