package output

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/projectdiscovery/fileutil"
)

const DefaultResultFile = "found_directories.txt"

// NextFileName returns base if it does not exist yet, otherwise the first
// free name among base1, base2, ... with the number placed before the
// extension.
func NextFileName(base string) string {
	if base == "" {
		base = DefaultResultFile
	}
	if !fileutil.FileExists(base) {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; ; i++ {
		name := stem + strconv.Itoa(i) + ext
		if !fileutil.FileExists(name) {
			return name
		}
	}
}

// WriteResults writes urls, one per line, to the next free file name derived
// from base and returns the name used. An empty list still creates the file.
func WriteResults(base string, urls []string) (string, error) {
	if base == "" {
		base = DefaultResultFile
	}
	if dir := filepath.Dir(base); dir != "." && !fileutil.FolderExists(dir) {
		if err := fileutil.CreateFolder(dir); err != nil {
			return "", errors.Wrapf(err, "could not create %s", dir)
		}
	}
	file, filename, err := createNext(base)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, url := range urls {
		if _, err := writer.WriteString(url + "\n"); err != nil {
			return "", errors.Wrapf(err, "could not write %s", filename)
		}
	}
	if err := writer.Flush(); err != nil {
		return "", errors.Wrapf(err, "could not write %s", filename)
	}
	return filename, nil
}

// createNext exclusively creates the next free file name. A name taken
// between the lookup and the create moves on to the following one.
func createNext(base string) (*os.File, string, error) {
	for {
		filename := NextFileName(base)
		file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, filename, nil
		}
		if !os.IsExist(err) {
			return nil, "", errors.Wrapf(err, "could not create %s", filename)
		}
	}
}
