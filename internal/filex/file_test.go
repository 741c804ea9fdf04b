package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}

	again, err := EnsureSubdDir("downloads")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureSubdDir_FileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "downloads"), []byte("x"), 0o600))

	_, err := EnsureSubdDir("downloads")
	require.Error(t, err)
}

func TestSafeJoin(t *testing.T) {
	cases := map[string]string{
		"report.pdf":          "report.pdf",
		"../../etc/passwd":    "passwd",
		"/abs/path/photo.png": "photo.png",
		`..\..\win\evil.exe`:  "evil.exe",
	}
	for in, want := range cases {
		got, err := SafeJoin("dl", in)
		require.NoError(t, err, in)
		require.Equal(t, filepath.Join("dl", want), got, in)
	}

	for _, bad := range []string{"", ".", "..", "/"} {
		_, err := SafeJoin("dl", bad)
		require.ErrorIs(t, err, ErrBadFileName, bad)
	}
}
