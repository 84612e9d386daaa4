package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wellcoach/core"
)

var (
	_ core.SnapshotStore  = (*FileStore)(nil)
	_ core.SnapshotLister = (*FileStore)(nil)
)

// DefaultName derives a session name from t.
func DefaultName(t time.Time) string {
	return fmt.Sprintf("wellness_session_%s.json", t.Format("20060102_150405"))
}

// FileStoreOptions configure a FileStore.
type FileStoreOptions struct {
	Now func() time.Time
}

// FileStore persists each snapshot as an indented JSON file. Relative names
// resolve against dir; an empty dir means the working directory.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string, optFns ...func(o *FileStoreOptions)) *FileStore {
	opts := FileStoreOptions{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &FileStore{dir: dir, now: opts.Now}
}

// Save writes snap to name (generated from the clock when empty) and returns
// the name to pass to Load, which is relative to the store directory.
func (fs *FileStore) Save(ctx context.Context, name string, snap *core.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		name = DefaultName(fs.now())
	}
	path := fs.resolve(name)

	out := *snap
	if out.SessionID == "" {
		out.SessionID = uuid.NewString()
	}
	out.Normalize()
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create session directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write session: %w", err)
	}
	return name, nil
}

// Load reads the snapshot stored under name. Missing keys default to empty values.
func (fs *FileStore) Load(ctx context.Context, name string) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fs.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return decodeSnapshot(data)
}

// List returns the names of the JSON files in the store directory, most
// recently modified first. A missing directory yields no names.
func (fs *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := fs.dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	type file struct {
		name    string
		modTime time.Time
	}
	var files []file
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, file{name: e.Name(), modTime: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].name < files[j].name
	})
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}
	return names, nil
}

func (fs *FileStore) resolve(name string) string {
	if filepath.IsAbs(name) || fs.dir == "" {
		return name
	}
	return filepath.Join(fs.dir, name)
}

func decodeSnapshot(data []byte) (*core.Snapshot, error) {
	var snap core.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	snap.Normalize()
	return &snap, nil
}
