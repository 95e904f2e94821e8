package output

import (
	"crypto/sha1"
	"io"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// OutputWriter prints discovery lines to its writers, skipping lines it has
// printed recently.
type OutputWriter struct {
	cache   *lru.Cache
	writers []io.Writer
	sync.Mutex
}

func NewOutputWriter(writers ...io.Writer) (*OutputWriter, error) {
	lastPrintedCache, err := lru.New(2048)
	if err != nil {
		return nil, err
	}
	return &OutputWriter{cache: lastPrintedCache, writers: writers}, nil
}

// Write writes data followed by a newline to every writer.
func (o *OutputWriter) Write(data []byte) {
	o.Lock()
	defer o.Unlock()

	for _, w := range o.writers {
		_, _ = w.Write(data)
		_, _ = w.Write([]byte("\n"))
	}
}

func (o *OutputWriter) findDuplicate(data string) bool {
	itemHash := sha1.Sum([]byte(data))
	// ContainsOrAdd keeps check and insert atomic across workers
	found, _ := o.cache.ContainsOrAdd(itemHash, struct{}{})
	return found
}

// WriteString writes data unless the same line was written recently.
func (o *OutputWriter) WriteString(data string) bool {
	if o.findDuplicate(data) {
		return false
	}
	o.Write([]byte(data))
	return true
}

// WriteEvent prints a discovery as plain text or JSON.
func (o *OutputWriter) WriteEvent(event ResultEvent, asJSON, noColor bool) bool {
	switch {
	case asJSON:
		data, err := event.JSON()
		if err != nil {
			return false
		}
		return o.WriteString(string(data))
	case noColor:
		return o.WriteString(event.EventToStdoutNoColor())
	default:
		return o.WriteString(event.EventToStdout())
	}
}

// Close closes the file writers.
func (o *OutputWriter) Close() {
	o.Lock()
	defer o.Unlock()
	for _, writer := range o.writers {
		if fileWriter, ok := writer.(*os.File); ok && fileWriter != os.Stdout && fileWriter != os.Stderr {
			_ = fileWriter.Close()
		}
	}
}
