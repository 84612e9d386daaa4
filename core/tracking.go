package core

import (
	"bytes"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DailyTracking maps a day (DateLayout) to its tracked metrics. Days keep
// their insertion order, including across JSON round-trips, so "recent"
// means most recently inserted rather than chronologically latest.
//
// The zero value is an empty tracking table ready to use.
type DailyTracking struct {
	days *orderedmap.OrderedMap[string, map[string]any]
}

// NewDailyTracking returns an empty tracking table.
func NewDailyTracking() DailyTracking {
	return DailyTracking{days: orderedmap.New[string, map[string]any]()}
}

func (d *DailyTracking) ensure() {
	if d.days == nil {
		d.days = orderedmap.New[string, map[string]any]()
	}
}

// Set records value for (date, metric). A new date is appended at the end;
// an existing (date, metric) pair is overwritten in place.
func (d *DailyTracking) Set(date, metric string, value any) {
	d.ensure()
	bucket, ok := d.days.Get(date)
	if !ok {
		bucket = map[string]any{}
		d.days.Set(date, bucket)
	}
	bucket[metric] = value
}

// Day returns a copy of the metrics recorded for date.
func (d DailyTracking) Day(date string) (map[string]any, bool) {
	if d.days == nil {
		return nil, false
	}
	bucket, ok := d.days.Get(date)
	if !ok {
		return nil, false
	}
	return copyMetrics(bucket), true
}

// Len returns the number of tracked days.
func (d DailyTracking) Len() int {
	if d.days == nil {
		return 0
	}
	return d.days.Len()
}

// Dates returns all tracked days in insertion order.
func (d DailyTracking) Dates() []string {
	if d.days == nil {
		return []string{}
	}
	out := make([]string, 0, d.days.Len())
	for pair := d.days.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Last returns a copy holding only the n most recently inserted days.
func (d DailyTracking) Last(n int) DailyTracking {
	out := NewDailyTracking()
	dates := d.Dates()
	if n < len(dates) {
		dates = dates[len(dates)-n:]
	}
	for _, date := range dates {
		bucket, _ := d.days.Get(date)
		out.days.Set(date, copyMetrics(bucket))
	}
	return out
}

// Clone returns a deep copy of the table (metric values are copied shallowly).
func (d DailyTracking) Clone() DailyTracking {
	return d.Last(d.Len())
}

// MarshalJSON encodes the table as a JSON object preserving day order.
func (d DailyTracking) MarshalJSON() ([]byte, error) {
	if d.days == nil || d.days.Len() == 0 {
		return []byte("{}"), nil
	}
	return d.days.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the input.
// A JSON null decodes to an empty table.
func (d *DailyTracking) UnmarshalJSON(data []byte) error {
	d.days = orderedmap.New[string, map[string]any]()
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := d.days.UnmarshalJSON(data); err != nil {
		return err
	}
	for pair := d.days.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = map[string]any{}
		}
	}
	return nil
}

func copyMetrics(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
