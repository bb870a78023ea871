package docker

import (
	"archive/tar"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// contextExcludes are project files that never enter the build context.
var contextExcludes = map[string]bool{
	domain.LockFileName:    true,
	domain.BuildRecordName: true,
}

// buildContext tars dir into memory. Paths are relative to dir; symlinks are
// stored as links.
func buildContext(dir string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." || contextExcludes[rel] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if info.Mode()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		//nolint:gosec // path comes from walking the project directory
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", dir)
	}

	if err := tw.Close(); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", dir)
	}
	return &buf, nil
}
