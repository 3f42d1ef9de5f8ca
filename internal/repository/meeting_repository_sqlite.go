package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

type sqliteMeetingRepository struct {
	db *sql.DB
}

// NewSQLiteMeetingRepository returns an SQLite-backed implementation.
func NewSQLiteMeetingRepository(db *sql.DB) MeetingRepository {
	return &sqliteMeetingRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sqliteMeetingRepository) Create(ctx context.Context, meeting *domain.MeetingRequest) error {
	const query = `
        INSERT INTO meetings (id, requester_id, name, email, purpose, status, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?)`
	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err := r.db.ExecContext(ctx, query,
		meeting.ID,
		meeting.RequesterID,
		meeting.Name,
		meeting.Email,
		meeting.Purpose,
		string(meeting.Status),
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	return nil
}

func (r *sqliteMeetingRepository) GetByID(ctx context.Context, id string) (*domain.MeetingRequest, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id=?`
	meeting, err := scanSQLiteMeeting(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (r *sqliteMeetingRepository) List(ctx context.Context, filter MeetingFilter) ([]domain.MeetingRequest, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, string(status))
			placeholders[i] = "?"
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	limit, offset := pageBounds(filter)

	query := fmt.Sprintf(`SELECT %s FROM meetings WHERE %s ORDER BY created_at DESC, id LIMIT %d OFFSET %d`,
		meetingColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MeetingRequest
	for rows.Next() {
		meeting, err := scanSQLiteMeeting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *meeting)
	}
	return result, rows.Err()
}

func (r *sqliteMeetingRepository) Transition(ctx context.Context, id string, from domain.MeetingStatus, t domain.MeetingTransition) (*domain.MeetingRequest, error) {
	query := `
        UPDATE meetings SET status=?, meeting_date=?, meeting_time=?, reason=?, decided_by=?,
            decided_at=?, updated_at=?
        WHERE id=? AND status=?
        RETURNING ` + meetingColumns
	decidedAt := t.DecidedAt
	meeting, err := scanSQLiteMeeting(r.db.QueryRowContext(ctx, query,
		string(t.Status),
		t.Date,
		t.Time,
		t.Reason,
		t.DecidedBy,
		nullableMillis(&decidedAt),
		toMillis(time.Now()),
		id,
		string(from),
	))
	if err == nil {
		return meeting, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrStatusChanged
}

func scanSQLiteMeeting(row rowScanner) (*domain.MeetingRequest, error) {
	var (
		meeting              domain.MeetingRequest
		status               string
		decidedAt            sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(
		&meeting.ID,
		&meeting.RequesterID,
		&meeting.Name,
		&meeting.Email,
		&meeting.Purpose,
		&status,
		&meeting.Date,
		&meeting.Time,
		&meeting.Reason,
		&meeting.DecidedBy,
		&decidedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	meeting.Status = domain.MeetingStatus(status)
	meeting.DecidedAt = timeFromNullable(decidedAt)
	meeting.CreatedAt = fromMillis(createdAt)
	meeting.UpdatedAt = fromMillis(updatedAt)
	return &meeting, nil
}
