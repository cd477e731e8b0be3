package wire

import (
	"github.com/Eughami/cinema-dj-be/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /movies - list movies
	r.Get("/movies", movieHandler.GetMovies)

	// GET /movies/{id} - movie details with its sessions
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
}
