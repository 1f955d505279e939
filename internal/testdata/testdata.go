// Package testdata provides fixture files and reference recognizers for tests.
package testdata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// filesDir is the directory of fixture files next to this source file.
var filesDir = func() string {
	_, src, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: no caller information to locate fixtures")
	}
	return filepath.Join(filepath.Dir(src), "files")
}()

// Reader returns a reader for the fixture file name. Errors carry the name
// of the fixture and wrap the underlying file system error.
func Reader(name string) (io.Reader, error) {
	data, err := os.ReadFile(Path(name))
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", name, err)
	}
	return bytes.NewReader(data), nil
}

// Path returns the path of the fixture file name, e.g. "anbn.grammar".
func Path(name string) string {
	return filepath.Join(filesDir, name)
}
