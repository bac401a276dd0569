// Package time formats timestamps in the representations Smithy protocols
// put on the wire.
package time

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp format names as used by the timestampFormat trait.
const (
	DateTime     = "date-time"
	HTTPDate     = "http-date"
	EpochSeconds = "epoch-seconds"
)

const (
	// dateTimeFormat is a RFC 3339 section 5.6 date-time with millisecond
	// precision and no UTC offset.
	dateTimeFormat = "2006-01-02T15:04:05.999Z"

	// httpDateFormat is an IMF-fixdate https://tools.ietf.org/html/rfc7231.html#section-7.1.1.1
	httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// FormatDateTime formats value as a date-time.
func FormatDateTime(value time.Time) string {
	return value.UTC().Format(dateTimeFormat)
}

// FormatHTTPDate formats value as an http-date.
func FormatHTTPDate(value time.Time) string {
	return value.UTC().Format(httpDateFormat)
}

// FormatEpochSeconds returns value as a Unix time in seconds with millisecond
// precision.
func FormatEpochSeconds(value time.Time) float64 {
	ms := value.UnixNano() / int64(time.Millisecond)
	return float64(ms) / 1e3
}

// Format formats value per the named timestamp format. Epoch seconds are
// rendered without trailing zeros.
func Format(value time.Time, format string) (string, error) {
	switch format {
	case DateTime:
		return FormatDateTime(value), nil
	case HTTPDate:
		return FormatHTTPDate(value), nil
	case EpochSeconds:
		return strconv.FormatFloat(FormatEpochSeconds(value), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown timestamp format %q", format)
	}
}
