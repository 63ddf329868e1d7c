package utils

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ReadFrom reads all content from r. A terminal yields no content.
func ReadFrom(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		return readFrom(f)
	}
	bytes, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}

func readFrom(f *os.File) (string, error) {
	// Never block waiting on a terminal
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "", nil
	}

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	bytes, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(bytes)), nil
}
