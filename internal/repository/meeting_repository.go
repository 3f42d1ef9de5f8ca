package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerhub/portal-service/internal/domain"
)

// MeetingFilter captures admin listing parameters.
type MeetingFilter struct {
	Statuses []domain.MeetingStatus
	Limit    int
	Offset   int
}

// MeetingRepository encapsulates meeting request persistence.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.MeetingRequest) error
	GetByID(ctx context.Context, id string) (*domain.MeetingRequest, error)
	List(ctx context.Context, filter MeetingFilter) ([]domain.MeetingRequest, error)
	// Transition applies t only while the stored status equals from. It returns ErrNotFound
	// for an unknown id and ErrStatusChanged when the status no longer matches.
	Transition(ctx context.Context, id string, from domain.MeetingStatus, t domain.MeetingTransition) (*domain.MeetingRequest, error)
}

const meetingColumns = `id, requester_id, name, email, purpose, status, meeting_date, meeting_time, reason,
               decided_by, decided_at, created_at, updated_at`

const defaultMeetingPageSize = 20

type meetingRepository struct {
	pool *pgxpool.Pool
}

// NewMeetingRepository instantiates a Postgres-backed repository.
func NewMeetingRepository(pool *pgxpool.Pool) MeetingRepository {
	return &meetingRepository{pool: pool}
}

func (r *meetingRepository) Create(ctx context.Context, meeting *domain.MeetingRequest) error {
	const query = `
        INSERT INTO meetings (id, requester_id, name, email, purpose, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		meeting.ID,
		meeting.RequesterID,
		meeting.Name,
		meeting.Email,
		meeting.Purpose,
		meeting.Status,
	).Scan(&meeting.CreatedAt, &meeting.UpdatedAt)
	if isPgUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *meetingRepository) GetByID(ctx context.Context, id string) (*domain.MeetingRequest, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id=$1`
	meeting, err := scanMeeting(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgNoRows(err)
	}
	return meeting, nil
}

func (r *meetingRepository) List(ctx context.Context, filter MeetingFilter) ([]domain.MeetingRequest, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	limit, offset := pageBounds(filter)

	query := fmt.Sprintf(`SELECT %s FROM meetings WHERE %s ORDER BY created_at DESC, id LIMIT %d OFFSET %d`,
		meetingColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MeetingRequest
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *meeting)
	}
	return result, rows.Err()
}

func (r *meetingRepository) Transition(ctx context.Context, id string, from domain.MeetingStatus, t domain.MeetingTransition) (*domain.MeetingRequest, error) {
	query := `
        UPDATE meetings SET status=$1, meeting_date=$2, meeting_time=$3, reason=$4, decided_by=$5,
            decided_at=$6, updated_at=NOW()
        WHERE id=$7 AND status=$8
        RETURNING ` + meetingColumns
	meeting, err := scanMeeting(r.pool.QueryRow(ctx, query,
		t.Status,
		t.Date,
		t.Time,
		t.Reason,
		t.DecidedBy,
		t.DecidedAt,
		id,
		from,
	))
	if err == nil {
		return meeting, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	// zero rows: either the id is unknown or another writer moved the status first
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrStatusChanged
}

func scanMeeting(row pgx.Row) (*domain.MeetingRequest, error) {
	var meeting domain.MeetingRequest
	if err := row.Scan(
		&meeting.ID,
		&meeting.RequesterID,
		&meeting.Name,
		&meeting.Email,
		&meeting.Purpose,
		&meeting.Status,
		&meeting.Date,
		&meeting.Time,
		&meeting.Reason,
		&meeting.DecidedBy,
		&meeting.DecidedAt,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &meeting, nil
}

func pageBounds(filter MeetingFilter) (int, int) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMeetingPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
