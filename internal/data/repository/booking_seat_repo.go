package repository

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/entity"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingSeatRepository interface {
	// ClaimTx inserts one seat claim inside the caller's transaction. A
	// unique violation on (session_id, seat) means the seat was already
	// claimed; the caller classifies that error and aborts the transaction.
	ClaimTx(ctx context.Context, tx pgx.Tx, seat *entity.BookingSeat) error
	FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error)
	FindClaimedSeats(ctx context.Context, sessionID int64) ([]string, error)
	FindClaimedSeatsTx(ctx context.Context, tx pgx.Tx, sessionID int64) ([]string, error)
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) ClaimTx(ctx context.Context, tx pgx.Tx, seat *entity.BookingSeat) error {
	query := `
		INSERT INTO booking_seats (booking_id, session_id, seat)
		VALUES ($1, $2, $3)
	`

	_, err := tx.Exec(ctx, query,
		seat.BookingID,
		seat.SessionID,
		seat.Seat,
	)

	if err != nil {
		// Expected under contention: constraint violations are classified by
		// the service, so log at debug level only.
		r.log.Debug("Failed to claim seat",
			zap.Error(err),
			zap.Int64("booking_id", seat.BookingID),
			zap.Int64("session_id", seat.SessionID),
			zap.String("seat", seat.Seat),
		)
		return fmt.Errorf("claim seat %s for session %d: %w", seat.Seat, seat.SessionID, err)
	}

	return nil
}

func (r *bookingSeatRepository) FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error) {
	query := `
		SELECT id, booking_id, session_id, seat, created_at
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats by booking ID",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking seats by booking ID %d: %w", bookingID, err)
	}
	defer rows.Close()

	var bookingSeats []*entity.BookingSeat
	for rows.Next() {
		var bs entity.BookingSeat
		err := rows.Scan(
			&bs.ID,
			&bs.BookingID,
			&bs.SessionID,
			&bs.Seat,
			&bs.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		bookingSeats = append(bookingSeats, &bs)
	}

	return bookingSeats, nil
}

func (r *bookingSeatRepository) FindClaimedSeats(ctx context.Context, sessionID int64) ([]string, error) {
	return r.findClaimedSeats(ctx, r.db, sessionID)
}

func (r *bookingSeatRepository) FindClaimedSeatsTx(ctx context.Context, tx pgx.Tx, sessionID int64) ([]string, error) {
	return r.findClaimedSeats(ctx, tx, sessionID)
}

func (r *bookingSeatRepository) findClaimedSeats(ctx context.Context, q database.Querier, sessionID int64) ([]string, error) {
	query := `
		SELECT seat
		FROM booking_seats
		WHERE session_id = $1
		ORDER BY seat
	`

	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find claimed seats by session",
			zap.Error(err),
			zap.Int64("session_id", sessionID),
		)
		return nil, fmt.Errorf("find claimed seats for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	seats := make([]string, 0)
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}
