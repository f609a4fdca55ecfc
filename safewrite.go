package galaxy

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrUnsupportedFormat is returned when a surface cannot write a file type.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FileWriter saves a drawing, choosing the format from the file extension.
type FileWriter interface {
	WriteFile(fname string) error
}

// SafeWrite saves w under a filename built from prefix, the seed and ext,
// and returns that name.
func (s Seed) SafeWrite(w FileWriter, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	return fname, safeWrite(w, fname)
}

// safeWrite writes to a temp file next to fname then renames atomically
func safeWrite(w FileWriter, fname string) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	tmpfile, err := os.CreateTemp(dir, "galaxy.*"+filepath.Ext(fname))
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := w.WriteFile(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}
