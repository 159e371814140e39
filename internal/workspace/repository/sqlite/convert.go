package sqlite

import (
	"database/sql"
	"time"

	"productivity-assistant/internal/model"
)

const dateLayout = "2006-01-02"

func (r *implRepository) formatDate(t time.Time) string {
	return t.In(r.loc).Format(dateLayout)
}

func (r *implRepository) nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: r.formatDate(*t), Valid: true}
}

func (r *implRepository) parseDate(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s.String, r.loc)
	if err != nil {
		return nil
	}
	return &t
}

func (r *implRepository) fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(r.loc)
}

func nullClock(t *model.TimeOfDay) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.String(), Valid: true}
}

func parseClock(s sql.NullString) *model.TimeOfDay {
	if !s.Valid {
		return nil
	}
	t, err := model.ParseTimeOfDay(s.String)
	if err != nil {
		return nil
	}
	return &t
}
