package pipeline

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
)

// injectDex rewrites the APK produced by aapt2 link with classes.dex added.
// archive/zip cannot append to an existing file, so every entry is copied
// into a fresh archive with its compressed bytes untouched and the dex is
// written last.
func injectDex(apkPath, dexPath string) error {
	r, err := zip.OpenReader(apkPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open linked package"), "path", apkPath)
	}
	defer func() { _ = r.Close() }()

	tmpPath := apkPath + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return zerr.Wrap(err, "failed to create package rewrite target")
	}
	defer func() { _ = tmp.Close() }()

	w := zip.NewWriter(tmp)
	for _, f := range r.File {
		raw, err := f.OpenRaw()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read package entry"), "entry", f.Name)
		}
		header := f.FileHeader
		dst, err := w.CreateRaw(&header)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to copy package entry"), "entry", f.Name)
		}
		if _, err := io.Copy(dst, raw); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to copy package entry"), "entry", f.Name)
		}
	}

	dex, err := os.Open(dexPath) //nolint:gosec // workspace path
	if err != nil {
		return zerr.Wrap(err, "dex output missing")
	}
	defer func() { _ = dex.Close() }()

	dst, err := w.Create("classes.dex")
	if err != nil {
		return zerr.Wrap(err, "failed to add classes.dex")
	}
	if _, err := io.Copy(dst, dex); err != nil {
		return zerr.Wrap(err, "failed to add classes.dex")
	}

	if err := w.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize package")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize package")
	}
	_ = r.Close()
	return os.Rename(tmpPath, apkPath)
}

// unzipDir extracts an archive into dir. Entry paths are confined to dir.
func unzipDir(src, dir string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", src)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		name := filepath.Clean(f.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return zerr.With(zerr.Wrap(domain.ErrStageFailed, "archive entry escapes extraction root"), "entry", f.Name)
		}
		target := filepath.Join(dir, name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to extract archive")
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return zerr.Wrap(err, "failed to extract archive")
		}

		rc, err := f.Open()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to extract archive entry"), "entry", f.Name)
		}
		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
		if err != nil {
			_ = rc.Close()
			return zerr.Wrap(err, "failed to extract archive entry")
		}
		_, err = io.Copy(out, rc) //nolint:gosec // workspace-local archive produced by our own tools
		_ = rc.Close()
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to extract archive entry"), "entry", f.Name)
		}
	}
	return nil
}

// zipDir archives the contents of dir (not dir itself) into zipPath.
func zipDir(dir, zipPath string) error {
	out, err := os.OpenFile(zipPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return zerr.Wrap(err, "failed to create archive")
	}
	defer func() { _ = out.Close() }()

	w := zip.NewWriter(out)
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		dst, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path) //nolint:gosec // workspace path
		if err != nil {
			return err
		}
		_, err = io.Copy(dst, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to archive directory"), "dir", dir)
	}
	if err := w.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	return out.Close()
}

// copyFile copies src to dst, replacing dst. Rename is not used because the
// output directory may live on a different filesystem than the workspace.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // workspace path
	if err != nil {
		return zerr.Wrap(err, "failed to open artifact for copy")
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return zerr.Wrap(err, "failed to create artifact")
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.Wrap(err, "failed to copy artifact")
	}
	return out.Close()
}
