package runner

import (
	"time"

	"github.com/projectdiscovery/gologger/formatter"
)

const timestampLayout = "15:04:05"

// timestampFormatter prefixes every levelled log line with the wall clock
// time. Unlabelled lines, Print() and Silent(), are left alone.
type timestampFormatter struct {
	formatter.Formatter
	now func() time.Time
}

func newTimestampFormatter(inner formatter.Formatter) *timestampFormatter {
	return &timestampFormatter{Formatter: inner, now: time.Now}
}

func (f *timestampFormatter) Format(event *formatter.LogEvent) ([]byte, error) {
	// the cli formatter consumes the label, look before formatting
	_, labelled := event.Metadata["label"]
	data, err := f.Formatter.Format(event)
	if err != nil || !labelled {
		return data, err
	}
	stamp := "[" + f.now().Format(timestampLayout) + "] "
	return append([]byte(stamp), data...), nil
}
