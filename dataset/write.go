package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/vidcache/model"
)

// Write emits assignments in the output format: a count line, then one line
// per assignment. Empty caches are written as a bare id.
func Write(w io.Writer, assignments []model.CacheAssignment) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf[:0], int64(len(assignments)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}
	for _, a := range assignments {
		buf = strconv.AppendInt(buf[:0], int64(a.CacheID), 10)
		for _, v := range a.VideoIDs {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes assignments to it.
func WriteFile(path string, assignments []model.CacheAssignment) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
	}()

	return Write(f, assignments)
}
