package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error)
	GetShowtimesByTheater(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error)
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error) {
	id, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID")
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimesByTheater(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
	id, err := utils.ParseUUID(theaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID")
	}

	showtimes, err := s.repo.Showtime.FindByTheaterID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err), zap.String("theater_id", theaterID))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := utils.ParseUUID(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID")
	}
	theaterID, err := utils.ParseUUID(req.TheaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		s.log.Error("Failed to check theater", zap.Error(err), zap.String("theater_id", req.TheaterID))
		return nil, fmt.Errorf("check theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	showDate, err := time.Parse("2006-01-02", req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: show_date must be YYYY-MM-DD")
	}

	showtime := &entity.Showtime{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		MovieID:   movieID,
		TheaterID: theaterID,
		ShowDate:  showDate,
		ShowTime:  req.ShowTime,
		Price:     req.Price,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime", zap.Error(err))
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.String("theater_id", req.TheaterID))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}
