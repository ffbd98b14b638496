package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tartampluch/go-geminids/internal/config"
)

var (
	valueTrue  = []byte("1")
	valueFalse = []byte("0")
)

// FileFlags persists boolean flags as one small file per key under Dir.
// A file holding "1" is true; anything else, or no file, is false.
type FileFlags struct {
	Dir string

	mu sync.Mutex
}

// NewFileFlags creates dir if needed and returns a store rooted there.
func NewFileFlags(dir string) (*FileFlags, error) {
	if dir == "" {
		return nil, errors.New(config.ErrStateDirEmpty)
	}
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return &FileFlags{Dir: dir}, nil
}

// Bool returns the stored value. Read errors are logged and read as false.
func (f *FileFlags) Bool(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error(config.ErrStateRead,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyKey, key,
				config.LogKeyError, err)
		}
		return false
	}
	return bytes.Equal(bytes.TrimSpace(data), valueTrue)
}

// SetBool writes value under key. Write errors are logged; the flag then
// reads as before, so at worst a notification is repeated.
func (f *FileFlags) SetBool(key string, value bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := valueFalse
	if value {
		data = valueTrue
	}

	if err := os.WriteFile(f.path(key), data, config.FilePermUserRW); err != nil {
		slog.Error(config.ErrStateWrite,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyKey, key,
			config.LogKeyError, err)
		return
	}

	slog.Debug(config.MsgStateUpdated,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyKey, key,
		config.LogKeyValue, value)
}

// path keeps keys inside Dir.
func (f *FileFlags) path(key string) string {
	return filepath.Join(f.Dir, filepath.Base(key))
}
