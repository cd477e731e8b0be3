package usecase

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/repository"
	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/dto/response"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionService interface {
	// GetSessionSeats returns the claimed seats plus session and movie detail,
	// all read from one snapshot so a concurrent booking cannot make the
	// pieces disagree.
	GetSessionSeats(ctx context.Context, sessionID int64) (*response.SessionSeatsResponse, error)
	GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SessionResponse], error)
}

type sessionService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) GetSessionSeats(ctx context.Context, sessionID int64) (*response.SessionSeatsResponse, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		s.log.Error("Failed to begin snapshot transaction", zap.Error(err))
		return nil, NewStoreError("Could not read seat availability", err)
	}
	defer tx.Rollback(ctx)

	session, err := s.repo.Session.FindByIDTx(ctx, tx, sessionID)
	if err != nil {
		return nil, NewStoreError("Could not load session", err)
	}
	if session == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Session %d not found", sessionID))
	}

	movie, err := s.repo.Movie.FindByIDTx(ctx, tx, session.MovieID)
	if err != nil {
		return nil, NewStoreError("Could not load movie", err)
	}
	if movie == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Movie %d not found", session.MovieID))
	}

	seats, err := s.repo.BookingSeat.FindClaimedSeatsTx(ctx, tx, sessionID)
	if err != nil {
		return nil, NewStoreError("Could not load claimed seats", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, NewStoreError("Could not close snapshot", err)
	}

	return &response.SessionSeatsResponse{
		Seats:          seats,
		SessionDetails: response.SessionToResponse(session),
		MovieDetails:   response.MovieToResponse(movie),
	}, nil
}

func (s *sessionService) GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SessionResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	sessions, err := s.repo.Session.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, NewStoreError("Could not load sessions", err)
	}

	total, err := s.repo.Session.CountAll(ctx)
	if err != nil {
		return nil, NewStoreError("Could not count sessions", err)
	}

	sessionResponses := make([]response.SessionResponse, len(sessions))
	for i, session := range sessions {
		sessionResponses[i] = response.SessionToResponse(session)
	}

	return response.NewPaginatedResponse(sessionResponses, req.Page, req.PerPage, total), nil
}
