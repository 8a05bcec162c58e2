package storage

import (
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/utils"
)

// Postgres hands DATE and TIMESTAMPTZ back as time.Time, sqlite as text.
// The column types below accept both.

var timeLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

type dateColumn struct {
	time.Time
}

func (c *dateColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.Time = utils.Day(v)
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	default:
		return errors.Errorf("cannot scan %T into date", src)
	}
}

func (c *dateColumn) parse(s string) error {
	if len(s) > len(utils.DateLayout) {
		s = s[:len(utils.DateLayout)]
	}
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return errors.Wrap(err, "scan date")
	}
	c.Time = t
	return nil
}

type timeColumn struct {
	time.Time
}

func (c *timeColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.Time = v.UTC()
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	case nil:
		c.Time = time.Time{}
		return nil
	default:
		return errors.Errorf("cannot scan %T into timestamp", src)
	}
}

func (c *timeColumn) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			c.Time = t.UTC()
			return nil
		}
	}
	return errors.Errorf("cannot parse timestamp %q", s)
}
