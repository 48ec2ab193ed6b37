package wire

import (
	"net/http"

	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/payment"
	"movie-booking/internal/queue"
	"movie-booking/internal/upload"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	cache *redis.Client,
	publisher *queue.Publisher,
) *App {
	gateway := payment.NewSimulatedGateway(logger)

	var uploader upload.Uploader
	if config.Cloudinary.CloudName != "" {
		uploader = upload.NewCloudinaryUploader(config.Cloudinary, logger)
	}

	service := usecase.NewService(repo, config, logger, cache, gateway, publisher, uploader)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireMovie(r, handler.Movie, repo, config, logger)
	wireTheater(r, handler.Theater, repo, config, logger)
	wireShowtime(r, handler.Showtime, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
