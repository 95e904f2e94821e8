package output

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/wjlin0/dirScan/pkg/result"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ResultEvent struct {
	TimeStamp     time.Time `json:"timestamp"`
	URL           string    `json:"url"`
	Path          string    `json:"path"`
	Status        int       `json:"status"`
	ContentLength int       `json:"content-length"`
	Worker        int       `json:"worker"`
}

func NewResultEvent(outcome result.Outcome, worker int) ResultEvent {
	return ResultEvent{
		TimeStamp:     time.Now(),
		URL:           outcome.URL,
		Path:          outcome.Candidate,
		Status:        outcome.Status,
		ContentLength: outcome.ContentLength,
		Worker:        worker,
	}
}

func (tr ResultEvent) String() string {
	return tr.URL
}

func (tr ResultEvent) EventToStdout() string {
	builder := &strings.Builder{}
	statusCode := tr.Status
	builder.WriteString(color.HiGreenString("[+] "))
	builder.WriteString(tr.URL)
	builder.WriteString(" [")

	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		builder.WriteString(color.HiGreenString(strconv.Itoa(statusCode)))
	case statusCode >= http.StatusMultipleChoices && statusCode < http.StatusBadRequest:
		builder.WriteString(color.HiYellowString(strconv.Itoa(statusCode)))
	default:
		builder.WriteString(color.HiRedString(strconv.Itoa(statusCode)))
	}
	builder.WriteRune(']')

	if tr.ContentLength != 0 {
		builder.WriteString(" [")
		builder.WriteString(color.HiWhiteString(strconv.Itoa(tr.ContentLength)))
		builder.WriteRune(']')
	}
	return builder.String()
}

func (tr ResultEvent) EventToStdoutNoColor() string {
	builder := &strings.Builder{}
	builder.WriteString("[+] ")
	builder.WriteString(tr.URL)
	builder.WriteString(" [")
	builder.WriteString(strconv.Itoa(tr.Status))
	builder.WriteRune(']')

	if tr.ContentLength != 0 {
		builder.WriteString(" [")
		builder.WriteString(strconv.Itoa(tr.ContentLength))
		builder.WriteRune(']')
	}
	return builder.String()
}

func (tr ResultEvent) JSON() ([]byte, error) {
	return json.Marshal(tr)
}
