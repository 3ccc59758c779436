package entity

import "time"

const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
)

// Timestamp is serialized as a zone-less ISO-8601 datetime with second precision.
type Timestamp struct {
	time.Time
}

func At(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// OptionalAt returns nil for a nil time so the field is emitted as null.
func OptionalAt(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := At(*t)
	return &ts
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	parsed, err := time.Parse(`"`+TimestampLayout+`"`, string(b))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

type Date struct {
	time.Time
}

func OnDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := time.Parse(`"`+DateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
