package usecase

import (
	"context"
	"fmt"

	"github.com/Eughami/cinema-dj-be/internal/data/repository"
	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	movies, err := s.repo.Movie.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, NewStoreError("Could not load movies", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, NewStoreError("Could not count movies", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, NewStoreError("Could not load movie", err)
	}
	if movie == nil {
		return nil, NewNotFoundError(fmt.Sprintf("Movie %d not found", movieID))
	}

	sessions, err := s.repo.Session.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, NewStoreError("Could not load movie sessions", err)
	}

	sessionResponses := make([]response.SessionResponse, len(sessions))
	for i, session := range sessions {
		sessionResponses[i] = response.SessionToResponse(session)
	}

	return &response.MovieDetailResponse{
		MovieResponse: response.MovieToResponse(movie),
		Sessions:      sessionResponses,
	}, nil
}
