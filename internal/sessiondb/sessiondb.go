// Package sessiondb reads work sessions out of a timer database. The schema
// is the one the companion timer writes: a time_logs table of started_at /
// stopped_at timestamps joined to a projects table for names.
package sessiondb

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"worklog/internal/session"
)

// Read opens the database at path, converts every recorded session into a
// log entry and closes it again. Nothing is ever written.
func Read(path string) (*session.Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows, err := db.Query(
		`SELECT tl.id, p.name, tl.started_at, tl.stopped_at, tl.tag
		 FROM time_logs tl
		 JOIN projects p ON tl.project_id = p.id
		 ORDER BY tl.started_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer rows.Close()

	log := &session.Log{Payperiod: session.Payperiod{}.WithDefaults()}
	for rows.Next() {
		var (
			id                   int64
			name, tag            string
			startedAt, stoppedAt string
		)
		if err := rows.Scan(&id, &name, &startedAt, &stoppedAt, &tag); err != nil {
			return nil, err
		}
		entry, err := toEntry(startedAt, stoppedAt, name, tag)
		if err != nil {
			return nil, fmt.Errorf("time_logs row %d: %w", id, err)
		}
		log.Entries = append(log.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return log, nil
}

func toEntry(startedAt, stoppedAt, name, tag string) (session.Entry, error) {
	start, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return session.Entry{}, fmt.Errorf("invalid started_at %q", startedAt)
	}
	stop, err := time.Parse(time.RFC3339, stoppedAt)
	if err != nil {
		return session.Entry{}, fmt.Errorf("invalid stopped_at %q", stoppedAt)
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	stopDay := time.Date(stop.Year(), stop.Month(), stop.Day(), 0, 0, 0, 0, time.UTC)
	if !day.Equal(stopDay) {
		return session.Entry{}, fmt.Errorf("session crosses midnight (%s to %s)", startedAt, stoppedAt)
	}

	notes := []string{name}
	if tag != "" {
		notes = append(notes, tag)
	}
	entry := session.Entry{
		Date:  day,
		Start: start.Hour()*60 + start.Minute(),
		End:   stop.Hour()*60 + stop.Minute(),
		Notes: notes,
	}
	if err := entry.Validate(); err != nil {
		return session.Entry{}, err
	}
	return entry, nil
}
