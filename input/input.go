// Package input reads line-based text input files.
package input

import (
	"bufio"
	"iter"
	"os"
	"strings"
)

// AllLines returns every line of the file, without line terminators.
// An empty file yields no lines.
func AllLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Lines returns a lazy sequence over the lines of the file. The file is
// closed when the sequence is abandoned or exhausted; the sequence is good
// for a single pass.
func Lines(path string) (iter.Seq[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}, nil
}
