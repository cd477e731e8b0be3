package wire

import (
	"net/http"

	"github.com/Eughami/cinema-dj-be/internal/adaptor"
	"github.com/Eughami/cinema-dj-be/internal/data/repository"
	"github.com/Eughami/cinema-dj-be/internal/usecase"
	"github.com/Eughami/cinema-dj-be/pkg/database"
	"github.com/Eughami/cinema-dj-be/pkg/middleware"
	"github.com/Eughami/cinema-dj-be/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(db, repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	wireMovie(r, handler.Movie)
	wireSession(r, handler.Session)
	wireBooking(r, handler.Booking)

	// Poster and banner images uploaded by the admin tooling
	wireStatic(r, config.App.ImageDir)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func wireStatic(r chi.Router, imageDir string) {
	fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(imageDir)))
	r.Get("/images/*", fileServer.ServeHTTP)
}
