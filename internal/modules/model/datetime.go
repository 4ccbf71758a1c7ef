package model

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Zone-less forms are read as UTC and written back without a zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

const naiveOutLayout = "2006-01-02T15:04:05.999999"

// DateTime is an ISO 8601 timestamp with or without a UTC offset.
type DateTime struct {
	time.Time
	Naive bool
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Naive {
		return []byte(strconv.Quote(d.Time.Format(naiveOutLayout))), nil
	}
	return []byte(strconv.Quote(d.Time.Format(time.RFC3339Nano))), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("datetime must be a string, got %s", data)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDateTime accepts RFC 3339 (T or space separated) and the zone-less
// ISO 8601 forms. Fractional seconds are optional in every form.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateTime{Time: t, Naive: true}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid datetime %q", s)
}
