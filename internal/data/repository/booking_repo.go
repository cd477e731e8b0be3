package repository

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/entity"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateTx inserts the booking inside the caller's transaction and fills
	// in the generated ID. The caller commits or rolls back; nothing here is
	// visible outside the transaction until commit.
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (session_id, name, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		booking.SessionID,
		booking.Name,
		booking.Email,
		booking.PhoneNumber,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("session_id", booking.SessionID),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking for session %d: %w", booking.SessionID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, session_id, name, email, phone_number, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SessionID,
		&booking.Name,
		&booking.Email,
		&booking.PhoneNumber,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}
