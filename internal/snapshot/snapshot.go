// Package snapshot keeps timestamped backups of the compiled deployment
// output, taken before every recompilation.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stevedore-sh/stevedore/internal/fileutil"
)

const (
	// Prefix is the prefix of snapshot directory names.
	Prefix = "snapshot-"

	// dateFormat is the timestamp part of a snapshot name.
	dateFormat = "20060102-150405"

	// MaxSnapshots is the default number of snapshots to retain.
	MaxSnapshots = 20
)

// Info holds metadata about one snapshot.
type Info struct {
	Name    string
	Path    string
	Created time.Time
}

// Create copies outputDir into snapshotsDir under a fresh unique name and
// returns the name. An absent or empty output directory yields an empty
// name and no snapshot.
func Create(outputDir, snapshotsDir string) (string, error) {
	if !dirHasContent(outputDir) {
		return "", nil
	}

	if err := os.MkdirAll(snapshotsDir, 0755); err != nil {
		return "", fmt.Errorf("create snapshots directory: %w", err)
	}

	// uuid suffix prevents same-second collisions
	name := Prefix + time.Now().Format(dateFormat) + "-" + uuid.NewString()[:8]
	target := filepath.Join(snapshotsDir, name)

	if err := fileutil.CopyDir(outputDir, target); err != nil {
		os.RemoveAll(target)
		return "", fmt.Errorf("copy output to snapshot: %w", err)
	}

	return name, nil
}

// List returns the snapshots in snapshotsDir, newest first.
func List(snapshotsDir string) ([]Info, error) {
	entries, err := os.ReadDir(snapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshots directory: %w", err)
	}

	var snapshots []Info
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), Prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, Info{
			Name:    entry.Name(),
			Path:    filepath.Join(snapshotsDir, entry.Name()),
			Created: info.ModTime(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].Created.Equal(snapshots[j].Created) {
			return snapshots[i].Created.After(snapshots[j].Created)
		}
		return snapshots[i].Name > snapshots[j].Name
	})

	return snapshots, nil
}

// Prune removes the oldest snapshots beyond keep and returns how many
// were deleted.
func Prune(snapshotsDir string, keep int) (int, error) {
	snapshots, err := List(snapshotsDir)
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	if len(snapshots) <= keep {
		return 0, nil
	}

	removed := 0
	for _, snap := range snapshots[keep:] {
		if err := os.RemoveAll(snap.Path); err != nil {
			return removed, fmt.Errorf("remove snapshot %s: %w", snap.Name, err)
		}
		removed++
	}

	return removed, nil
}

// dirHasContent reports whether dir exists and holds at least one entry.
func dirHasContent(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
