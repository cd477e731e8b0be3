package repository

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/entity"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Session, error)
	FindByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*entity.Session, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Session, error)
	CountAll(ctx context.Context) (int64, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Session, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

const sessionColumns = `id, movie_id, audio, subtitle, hall_no, show_date, show_time, created_at`

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (*entity.Session, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *sessionRepository) FindByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*entity.Session, error) {
	return r.findByID(ctx, tx, id)
}

func (r *sessionRepository) findByID(ctx context.Context, q database.Querier, id int64) (*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1
	`

	var session entity.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.Audio,
		&session.Subtitle,
		&session.HallNo,
		&session.ShowDate,
		&session.ShowTime,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.Int64("session_id", id),
		)
		return nil, fmt.Errorf("find session by ID %d: %w", id, err)
	}

	return &session, nil
}

func (r *sessionRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY show_date, show_time, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find sessions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows, r.log)
}

func (r *sessionRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM sessions`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count sessions", zap.Error(err))
		return 0, fmt.Errorf("count sessions: %w", err)
	}

	return count, nil
}

func (r *sessionRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE movie_id = $1
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find sessions by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find sessions by movie ID %d: %w", movieID, err)
	}
	defer rows.Close()

	return scanSessions(rows, r.log)
}

func scanSessions(rows pgx.Rows, log *zap.Logger) ([]*entity.Session, error) {
	var sessions []*entity.Session
	for rows.Next() {
		var session entity.Session
		err := rows.Scan(
			&session.ID,
			&session.MovieID,
			&session.Audio,
			&session.Subtitle,
			&session.HallNo,
			&session.ShowDate,
			&session.ShowTime,
			&session.CreatedAt,
		)
		if err != nil {
			log.Error("Failed to scan session row", zap.Error(err))
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}
