package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileStamp pairs a content file path with its last observed modification
// time.
type FileStamp struct {
	Path    string
	ModTime time.Time
}

// ScanDir lists the *.json files directly under dir, sorted by name.
// Subdirectories are not descended into; assets/ships/designs/ holds user
// designs, not catalog content.
func ScanDir(dir string) ([]FileStamp, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	stamps := make([]FileStamp, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// The file disappeared mid-scan; the next poll sees the removal.
			continue
		}
		stamps = append(stamps, FileStamp{
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Path < stamps[j].Path })
	return stamps, nil
}

// FileIndex remembers the modification time of every content file seen by
// the last load pass over one directory. It answers a single question: does
// the directory still look the way it did when the catalog was built?
type FileIndex struct {
	stamps map[string]time.Time
}

// NewFileIndex returns an empty index. An empty index is stale against any
// non-empty directory, so the first reload pass always rebuilds.
func NewFileIndex() *FileIndex {
	return &FileIndex{stamps: make(map[string]time.Time)}
}

// Stale reports whether the scanned directory diverges from the index:
// a file was added, removed, or carries a different modification time.
func (x *FileIndex) Stale(stamps []FileStamp) bool {
	if len(stamps) != len(x.stamps) {
		return true
	}
	for _, st := range stamps {
		prev, ok := x.stamps[st.Path]
		if !ok || !prev.Equal(st.ModTime) {
			return true
		}
	}
	return false
}

// Rebuild replaces the index contents with the given scan.
func (x *FileIndex) Rebuild(stamps []FileStamp) {
	x.stamps = make(map[string]time.Time, len(stamps))
	for _, st := range stamps {
		x.stamps[st.Path] = st.ModTime
	}
}

// Len returns the number of files the index is tracking.
func (x *FileIndex) Len() int {
	return len(x.stamps)
}
