package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFrom_Pipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	expected := "Fix the bug\n\nLonger description"
	go func() {
		_, _ = w.Write([]byte(expected + "\n"))
		_ = w.Close()
	}()

	msg, err := ReadFrom(r)
	require.NoError(t, err)
	require.Equal(t, expected, msg)
}

func TestReadFromEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	msg, err := readFrom(f)
	require.NoError(t, err)
	require.Empty(t, msg)
}

func TestReadFrom_Reader(t *testing.T) {
	t.Parallel()

	msg, err := ReadFrom(strings.NewReader("  subject line\nbody\n"))
	require.NoError(t, err)
	require.Equal(t, "subject line\nbody", msg)
}
