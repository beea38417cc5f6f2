package wire

import (
	"movie-records/internal/adaptor"
	"movie-records/internal/data/repository"
	"movie-records/internal/usecase"
	"movie-records/pkg/middleware"
	"movie-records/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP stack
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	// routes are declared without the trailing slash; both forms are served
	r.Use(chimw.StripSlashes)

	wireMovie(r, handler.Movie)

	r.Get("/ping", handler.Health.Ping)
	r.Get("/health", handler.Health.Health)

	return r
}
