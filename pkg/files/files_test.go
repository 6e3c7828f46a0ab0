package fileutils_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	fileutils "github.com/10Narratives/faaspack/pkg/files"
)

func TestCreateTempDir(t *testing.T) {
	first, err := fileutils.CreateTempDir("faaspack-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(first) })

	second, err := fileutils.CreateTempDir("faaspack-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(second) })

	require.NotEqual(t, first, second)
	require.DirExists(t, first)
	require.True(t, strings.HasPrefix(filepath.Base(first), "faaspack-test-"))
}

func TestDeleteFile(t *testing.T) {
	t.Run("ok: missing file is not an error", func(t *testing.T) {
		require.NoError(t, fileutils.DeleteFile(filepath.Join(t.TempDir(), "missing.zip")))
	})

	t.Run("ok: existing file removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stale.zip")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		require.NoError(t, fileutils.DeleteFile(path))
		require.NoFileExists(t, path)
	})
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755))

	dst := filepath.Join(dir, "copy.sh")
	require.NoError(t, fileutils.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "#!/bin/sh\n", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("b"), 0o644))

	dst := t.TempDir()
	require.NoError(t, fileutils.CopyDir(src, dst))

	require.FileExists(t, filepath.Join(dst, "a.txt"))
	require.FileExists(t, filepath.Join(dst, "sub", "b.txt"))
}

func TestZipDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "handler.py"), []byte("pass"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "init_script.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("b"), 0o644))

	dstZip := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, fileutils.ZipDir(src, dstZip))

	zr, err := zip.OpenReader(dstZip)
	require.NoError(t, err)
	defer zr.Close()

	modes := make(map[string]os.FileMode, len(zr.File))
	for _, f := range zr.File {
		modes[f.Name] = f.Mode().Perm()
	}

	require.Contains(t, modes, "handler.py")
	require.Contains(t, modes, "sub/b.txt")
	// Executable bit survives the round trip.
	require.Equal(t, os.FileMode(0o755), modes["init_script.sh"])
}
