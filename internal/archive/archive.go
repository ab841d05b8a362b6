// Package archive moves packaged function archives between the build tree
// and their published destination paths.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Info describes a staged archive on disk.
type Info struct {
	Path    string
	Size    int64
	ModTime time.Time
	SHA256  string
}

// RemoveStale deletes the archive at path if it exists. A missing file is
// not an error; the removal converges on "absent" either way.
func RemoveStale(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale archive: %w", err)
	}
	return nil
}

// Stage copies the archive at src to dst. The copy goes through a temp file
// in the destination directory followed by a rename, with a plain copy as
// fallback, so a partially written destination is never left behind.
func Stage(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source archive: %w", err)
	}
	defer func() { _ = in.Close() }()

	tmpFile, terr := os.CreateTemp(filepath.Dir(dst), ".shipr_tmp_")
	if terr != nil {
		return fmt.Errorf("create temp archive: %w", terr)
	}
	tmp := tmpFile.Name()
	// ensure temp file gets removed if something goes wrong
	defer func() { _ = os.Remove(tmp) }()
	if _, err := io.Copy(tmpFile, in); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("copy archive: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("set archive mode: %w", err)
	}
	return renameOrFallback(tmp, dst)
}

// renameOrFallback attempts an atomic rename of tmp -> dst and falls back to
// a copy if the rename fails (useful on Windows where rename may fail if the
// target is in use).
func renameOrFallback(tmp, dst string) error {
	if err := os.Rename(tmp, dst); err == nil {
		return nil
	}
	f, ferr := os.Open(tmp)
	if ferr != nil {
		return fmt.Errorf("rename failed; open tmp: %w", ferr)
	}
	defer func() { _ = f.Close() }()
	dstF, derr := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if derr != nil {
		return fmt.Errorf("rename failed; open dst: %w", derr)
	}
	_, copyErr := io.Copy(dstF, f)
	if cerr := dstF.Close(); copyErr == nil {
		copyErr = cerr
	}
	if copyErr != nil {
		return fmt.Errorf("rename failed; fallback copy: %w", copyErr)
	}
	return nil
}

// Inspect stats the archive at path and computes its content digest.
// A missing file is reported via fs.ErrNotExist so callers can show
// "not staged" instead of failing.
func Inspect(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	sum, err := digest(path)
	if err != nil {
		return nil, err
	}
	return &Info{Path: path, Size: st.Size(), ModTime: st.ModTime(), SHA256: sum}, nil
}

func digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("digest archive: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
