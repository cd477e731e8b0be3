package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/entity"
	"github.com/Eughami/cinema-dj-be/internal/data/repository"
	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/dto/response"
	"github.com/Eughami/cinema-dj-be/pkg/database"
	"github.com/Eughami/cinema-dj-be/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Postgres SQLSTATE codes the booking transaction classifies.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type BookingService interface {
	// CreateBooking runs the whole booking as one transaction: one booking
	// row plus one seat claim per requested seat, committed together or not
	// at all.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error)
	VerifyBooking(ctx context.Context, bookingID int64) (*response.VerifyBookingResponse, error)
}

type bookingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error) {
	// The handler validates before calling, but an empty seat list must never
	// open a transaction, so check again here.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// No availability pre-check here: the unique constraint on
	// (session_id, seat) is the conflict detector. A check-then-insert would
	// leave a window for a concurrent booking to take the seat.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, NewStoreError("Could not open booking transaction", err)
	}
	// Rollback on every exit path that did not commit. After a successful
	// commit this is a no-op.
	defer tx.Rollback(ctx)

	booking := &entity.Booking{
		SessionID:   req.SessionID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		return nil, s.classifyBookingError(err, req.SessionID, "")
	}

	seats := make([]string, 0, len(req.Seats))
	for _, seat := range req.Seats {
		claim := &entity.BookingSeat{
			BookingID: booking.ID,
			SessionID: req.SessionID,
			Seat:      seat,
		}

		if err := s.repo.BookingSeat.ClaimTx(ctx, tx, claim); err != nil {
			return nil, s.classifyBookingError(err, req.SessionID, seat)
		}

		seats = append(seats, seat)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.Int64("session_id", req.SessionID),
		)
		return nil, NewStoreError("Could not commit booking", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("session_id", booking.SessionID),
		zap.Int("seat_count", len(seats)),
	)

	summary := response.BookingToSummary(booking, seats)
	return &summary, nil
}

// classifyBookingError maps constraint violations onto the error taxonomy:
// a unique violation on the seat constraint is a conflict on the seat being
// inserted, a foreign key violation on session_id means the session does not
// exist. Anything else is an infrastructure failure.
func (s *bookingService) classifyBookingError(err error, sessionID int64, seat string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == "booking_seats_session_id_seat_key" && seat != "" {
				s.log.Info("Seat conflict",
					zap.Int64("session_id", sessionID),
					zap.String("seat", seat),
				)
				return NewSeatConflictError([]string{seat})
			}
		case pgForeignKeyViolation:
			s.log.Warn("Booking references missing session",
				zap.Int64("session_id", sessionID),
				zap.String("constraint", pgErr.ConstraintName),
			)
			return NewNotFoundError(fmt.Sprintf("Session %d not found", sessionID))
		}
	}

	s.log.Error("Booking transaction failed",
		zap.Error(err),
		zap.Int64("session_id", sessionID),
	)
	return NewStoreError("Booking could not be completed", err)
}

func (s *bookingService) VerifyBooking(ctx context.Context, bookingID int64) (*response.VerifyBookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, NewStoreError("Could not load booking", err)
	}
	if booking == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Booking %d not found", bookingID))
	}

	session, err := s.repo.Session.FindByID(ctx, booking.SessionID)
	if err != nil {
		return nil, NewStoreError("Could not load session", err)
	}
	if session == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Session %d not found", booking.SessionID))
	}

	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, NewStoreError("Could not load movie", err)
	}
	if movie == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Movie %d not found", session.MovieID))
	}

	bookingSeats, err := s.repo.BookingSeat.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, NewStoreError("Could not load booking seats", err)
	}

	seats := make([]string, 0, len(bookingSeats))
	for _, bs := range bookingSeats {
		seats = append(seats, bs.Seat)
	}

	return &response.VerifyBookingResponse{
		Booking:        response.BookingToSummary(booking, seats),
		SessionDetails: response.SessionToResponse(session),
		MovieDetails:   response.MovieToResponse(movie),
	}, nil
}
