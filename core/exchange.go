package core

import (
	"encoding/json"
	"time"
)

// DateTimeLayout is the human readable timestamp layout used in persisted sessions.
const DateTimeLayout = "2006-01-02 15:04:05"

// Exchange is one user message paired with the coach reply. Exchanges are
// immutable once appended to conversation memory.
type Exchange struct {
	User      string
	Agent     string
	CreatedAt time.Time
}

type exchangeJSON struct {
	User      string  `json:"user"`
	Agent     string  `json:"agent"`
	Timestamp float64 `json:"timestamp"`
	Date      string  `json:"date"`
}

// MarshalJSON encodes the exchange using the session file shape
// ({user, agent, timestamp, date}).
func (e Exchange) MarshalJSON() ([]byte, error) {
	w := exchangeJSON{User: e.User, Agent: e.Agent}
	if !e.CreatedAt.IsZero() {
		w.Timestamp = float64(e.CreatedAt.UnixNano()) / float64(time.Second)
		w.Date = e.CreatedAt.Format(DateTimeLayout)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the session file shape. The unix timestamp wins over
// the formatted date when both are present.
func (e *Exchange) UnmarshalJSON(data []byte) error {
	var w exchangeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.User = w.User
	e.Agent = w.Agent
	e.CreatedAt = time.Time{}
	switch {
	case w.Timestamp != 0:
		sec := int64(w.Timestamp)
		nsec := int64((w.Timestamp - float64(sec)) * float64(time.Second))
		e.CreatedAt = time.Unix(sec, nsec)
	case w.Date != "":
		if t, err := time.ParseInLocation(DateTimeLayout, w.Date, time.Local); err == nil {
			e.CreatedAt = t
		}
	}
	return nil
}
