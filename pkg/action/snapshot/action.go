package snapshot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/cstgen/pkg/action/print"
	"github.com/cmmoran/cstgen/pkg/manifest"
	"github.com/cmmoran/cstgen/pkg/printer"
)

var ErrNoPrevious = errors.New("no current/previous snapshots recorded")

// Generate prints opts.InFile into a snapshot file and records it in the manifest as the current
// version. Without an OutFile the snapshot is written to <name>-<version>.js in OutDir. opts is not
// modified.
func Generate(opts *printer.Options, manifestPath, snapshotName, snapshotVersion string) (string, error) {
	if snapshotName == "" || snapshotVersion == "" {
		return "", fmt.Errorf("snapshot name and version are required")
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	o := *opts
	opts = &o
	if opts.OutFile == "" {
		opts.OutFile = fmt.Sprintf("%s-%s.js", snapshotName, snapshotVersion)
	}
	outFile, err := print.Generate(opts, nil, io.Discard)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return "", fmt.Errorf("read printed snapshot: %w", err)
	}
	m.AddSnapshot(manifest.Snapshot{
		Name:    snapshotName,
		Version: snapshotVersion,
		File:    outFile,
		Input:   opts.InFile,
		Digest:  manifest.Digest(data),
		Settings: manifest.Settings{
			Format:         opts.Format,
			Indent:         opts.Indent,
			MaxInlineWidth: opts.MaxInlineWidth,
			Verified:       opts.Verify,
		},
	})
	if err := m.Save(manifestPath); err != nil {
		return "", err
	}
	slog.With("manifest", manifestPath, "version", snapshotVersion).Info("recorded snapshot")

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest and returns a textual diff of the previous and current
// snapshot files. Snapshots printed with the same settings and digest compare equal without being
// read.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	previous, current := m.Pair()
	if previous == nil {
		return "", ErrNoPrevious
	}
	if previous.Digest != "" && previous.Digest == current.Digest && previous.Settings == current.Settings {
		return "", nil
	}

	before, err := previous.Read()
	if err != nil {
		return "", err
	}
	after, err := current.Read()
	if err != nil {
		return "", err
	}
	if previous.Settings != current.Settings {
		slog.With("previous", previous.Version, "current", current.Version).Warn("snapshots were printed with different settings")
	}

	return cmp.Diff(string(before), string(after)), nil
}
