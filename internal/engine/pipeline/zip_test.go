package pipeline

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestAPK(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	// resources.arsc must stay stored; the rewrite must not recompress it.
	stored, err := w.CreateHeader(&zip.FileHeader{Name: "resources.arsc", Method: zip.Store})
	require.NoError(t, err)
	_, err = stored.Write([]byte("resource table"))
	require.NoError(t, err)

	deflated, err := w.Create("AndroidManifest.xml")
	require.NoError(t, err)
	_, err = deflated.Write([]byte("binary manifest"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestInjectDex(t *testing.T) {
	dir := t.TempDir()
	apk := filepath.Join(dir, "unsigned.apk")
	dex := filepath.Join(dir, "classes.dex")
	writeTestAPK(t, apk)
	require.NoError(t, os.WriteFile(dex, []byte("dex\n035"), 0o644))

	require.NoError(t, injectDex(apk, dex))

	r, err := zip.OpenReader(apk)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	byName := make(map[string]*zip.File)
	for _, f := range r.File {
		byName[f.Name] = f
	}

	require.Contains(t, byName, "classes.dex")
	require.Contains(t, byName, "resources.arsc")
	require.Contains(t, byName, "AndroidManifest.xml")
	assert.Equal(t, uint16(zip.Store), byName["resources.arsc"].Method, "stored entries stay stored")
	assert.NoFileExists(t, apk+".tmp")
}

func TestZipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "module")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "dex"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "dex", "classes.dex"), []byte("dex"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0o644))

	archive := filepath.Join(dir, "module.zip")
	require.NoError(t, zipDir(src, archive))

	out := filepath.Join(dir, "extracted")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, unzipDir(archive, out))

	data, err := os.ReadFile(filepath.Join(out, "dex", "classes.dex"))
	require.NoError(t, err)
	assert.Equal(t, []byte("dex"), data)
}
