// Package assets copies the web entry file and launcher icons into a build
// workspace.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// Embedder implements ports.AssetEmbedder.
type Embedder struct {
	logger ports.Logger
}

// New creates an Embedder.
func New(logger ports.Logger) *Embedder {
	return &Embedder{logger: logger}
}

var _ ports.AssetEmbedder = (*Embedder)(nil)

// Embed copies the entry file into assets/index.html byte for byte and, when
// an icon is configured, scales it into every density bucket. Any unusable
// input rejects the build before native tools run.
func (e *Embedder) Embed(ctx context.Context, spec domain.ProjectSpec, ws domain.BuildWorkspace) error {
	if err := e.copyEntry(spec.EntryFile, filepath.Join(ws.AssetsDir(), "index.html")); err != nil {
		return err
	}

	if spec.IconFile == "" {
		return nil
	}
	return e.embedIcon(ctx, spec.IconFile, ws)
}

func (e *Embedder) copyEntry(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // user-supplied entry file
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, "entry file is not readable"), "entry", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, err.Error()), "path", dst)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, err.Error()), "entry", src)
	}
	return out.Close()
}

// embedIcon decodes the source image once and scales all density buckets in
// parallel.
func (e *Embedder) embedIcon(ctx context.Context, iconPath string, ws domain.BuildWorkspace) error {
	f, err := os.Open(iconPath) //nolint:gosec // user-supplied icon file
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, "icon file is not readable"), "icon", iconPath)
	}
	defer func() { _ = f.Close() }()

	src, format, err := image.Decode(f)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, "icon is not a decodable PNG or JPEG image"), "icon", iconPath)
	}
	e.logger.Info(fmt.Sprintf("scaling %s icon into %d density buckets", format, len(domain.IconDensities)))

	g, _ := errgroup.WithContext(ctx)
	for _, bucket := range domain.IconDensities {
		g.Go(func() error {
			return writeScaledIcon(src, bucket, filepath.Join(ws.ResDir(), bucket.Name, "ic_launcher.png"))
		})
	}
	return g.Wait()
}

func writeScaledIcon(src image.Image, bucket domain.DensityBucket, dst string) error {
	scaled := image.NewRGBA(image.Rect(0, 0, bucket.Size, bucket.Size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, err.Error()), "path", dst)
	}
	defer func() { _ = out.Close() }()

	if err := png.Encode(out, scaled); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrAssetRejected, err.Error()), "path", dst)
	}
	return out.Close()
}
