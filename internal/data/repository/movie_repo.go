package repository

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/entity"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	// FindByIDTx reads within an existing transaction so callers composing a
	// snapshot (session + movie + seats) see one consistent point in time.
	FindByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, description, duration_in_minutes, genre, actors,
	       release_date, transfer_link, image, wide_image, created_at`

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *movieRepository) FindByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*entity.Movie, error) {
	return r.findByID(ctx, tx, id)
}

func (r *movieRepository) findByID(ctx context.Context, q database.Querier, id int64) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := q.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.DurationInMinutes,
		&movie.Genre,
		&movie.Actors,
		&movie.ReleaseDate,
		&movie.TransferLink,
		&movie.Image,
		&movie.WideImage,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY release_date DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.DurationInMinutes,
			&movie.Genre,
			&movie.Actors,
			&movie.ReleaseDate,
			&movie.TransferLink,
			&movie.Image,
			&movie.WideImage,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}
