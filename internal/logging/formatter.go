package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ZonedFormatter renders entries as
//
//	[2006-01-02 15:04:05,000 +0800] [LEVEL] - message
//
// with timestamps converted to a fixed location. The provider operates on
// China Standard Time, so log lines stay comparable to the provider's own
// records regardless of where the batch runs.
type ZonedFormatter struct {
	Location *time.Location
}

func (f *ZonedFormatter) Format(entry *log.Entry) ([]byte, error) {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	ts := entry.Time.In(loc)

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "[%s,%03d %s] [%s] - %s",
		ts.Format("2006-01-02 15:04:05"),
		ts.Nanosecond()/int(time.Millisecond),
		ts.Format("-0700"),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
