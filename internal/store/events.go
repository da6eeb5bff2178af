package store

import (
	"database/sql"
	"time"
)

// InsertEvent inserts a coding event and returns its ID.
func (db *DB) InsertEvent(e *CodingEvent) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO coding_events
		(user_id, event_type, problem_id, problem_title, platform, session_id,
		 language, source_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.EventType, e.ProblemID, e.ProblemTitle, e.Platform,
		e.SessionID, e.Language, e.SourceCode,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// FindCodingEvents returns the user's run and submit events newer than since,
// newest first. Other event types are excluded.
func (db *DB) FindCodingEvents(userID string, since time.Time) ([]CodingEvent, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, event_type, problem_id, problem_title, platform,
		 session_id, language, source_code, created_at
		 FROM coding_events
		 WHERE user_id = ? AND event_type IN (?, ?) AND created_at >= ?
		 ORDER BY created_at DESC`,
		userID, EventCodeRun, EventCodeSubmit, since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []CodingEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListActiveUsers returns the distinct user IDs with run or submit activity
// newer than since.
func (db *DB) ListActiveUsers(since time.Time) ([]string, error) {
	rows, err := db.conn.Query(
		`SELECT DISTINCT user_id FROM coding_events
		 WHERE event_type IN (?, ?) AND created_at >= ?
		 ORDER BY user_id`,
		EventCodeRun, EventCodeSubmit, since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanEvent(rows *sql.Rows) (CodingEvent, error) {
	var e CodingEvent
	var problemID, title, platform, sessionID, language, source sql.NullString
	var createdAt string
	if err := rows.Scan(
		&e.ID, &e.UserID, &e.EventType, &problemID, &title, &platform,
		&sessionID, &language, &source, &createdAt,
	); err != nil {
		return CodingEvent{}, err
	}
	e.ProblemID = problemID.String
	e.ProblemTitle = title.String
	e.Platform = platform.String
	e.SessionID = sessionID.String
	e.Language = language.String
	e.SourceCode = source.String
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}
