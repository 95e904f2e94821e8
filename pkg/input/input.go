package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/fileutil"
	"github.com/projectdiscovery/gologger"
)

// ReadLines reads a newline delimited file, trimming every line and
// skipping blank ones.
func ReadLines(filename string) ([]string, error) {
	if !fileutil.FileExists(filename) {
		return nil, errors.Errorf("file %s does not exist", filename)
	}
	lines, err := fileutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", filename)
	}
	var items []string
	for line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items, nil
}

// LoadList is ReadLines for lists that are allowed to be absent: a missing
// or unreadable file is logged and yields an empty list.
func LoadList(kind, filename string) []string {
	if filename == "" {
		return nil
	}
	items, err := ReadLines(filename)
	if err != nil {
		gologger.Error().Msgf("Could not load %s: %s", kind, err)
		return nil
	}
	gologger.Verbose().Msgf("Loaded %d entries from %s %s", len(items), kind, filename)
	return items
}

// ReadFrom reads candidates from r using the same rules as ReadLines.
func ReadFrom(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return items, errors.Wrap(err, "could not read input")
	}
	return items, nil
}
