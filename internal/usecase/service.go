package usecase

import (
	"movie-booking/internal/booking"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/payment"
	"movie-booking/internal/queue"
	"movie-booking/internal/upload"
	"movie-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Theater  TheaterService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	cache *redis.Client,
	gateway payment.Gateway,
	publisher *queue.Publisher,
	uploader upload.Uploader,
) *Service {
	sessions := booking.NewSessions()

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, uploader, log),
		Movie:    NewMovieService(repo, config, cache, log),
		Theater:  NewTheaterService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, config, sessions, gateway, publisher, log),
	}
}
