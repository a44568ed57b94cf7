package main

import (
	"errors"
	"os"
)

// ErrNoPath is returned when saving a document that has no path.
var ErrNoPath = errors.New("file is unnamed")

// FileSystem is the storage the editor reads and writes documents through.
type FileSystem interface {
	Exists(path string) bool
	ReadAll(path string) ([]byte, error)
	WriteAll(path string, data []byte) error
}

// osFS is the FileSystem backed by the real disk.
type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) WriteAll(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// LoadDocument reads path into a new unmodified document with the cursor at
// the start.
func LoadDocument(fs FileSystem, path string) (*Document, error) {
	data, err := fs.ReadAll(path)
	if err != nil {
		return nil, err
	}
	d := documentFromText(string(data))
	d.SetPath(path)
	return d, nil
}

// Open replaces d with the contents of path. On failure d is left untouched.
func (d *Document) Open(fs FileSystem, path string) error {
	loaded, err := LoadDocument(fs, path)
	if err != nil {
		return err
	}
	d.replace(loaded)
	return nil
}

// Save writes d to its own path.
func (d *Document) Save(fs FileSystem) error {
	path, ok := d.Path()
	if !ok {
		return ErrNoPath
	}
	return d.SaveTo(fs, path)
}

// SaveTo writes d to path without adopting it. A failed write leaves the
// document modified.
func (d *Document) SaveTo(fs FileSystem, path string) error {
	if err := fs.WriteAll(path, []byte(d.String())); err != nil {
		return err
	}
	d.modified = false
	return nil
}
