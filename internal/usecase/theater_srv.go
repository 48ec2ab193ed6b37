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

type TheaterService interface {
	GetTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	GetTheaterByID(ctx context.Context, theaterID string) (*response.TheaterResponse, error)
	CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error)
}

type theaterService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTheaterService(repo *repository.Repository, log *zap.Logger) TheaterService {
	return &theaterService{
		repo: repo,
		log:  log.With(zap.String("service", "theater")),
	}
}

func (s *theaterService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Theater.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get theaters", zap.Error(err))
		return nil, fmt.Errorf("get theaters: %w", err)
	}
	return response.TheatersToResponse(theaters), nil
}

func (s *theaterService) GetTheaterByID(ctx context.Context, theaterID string) (*response.TheaterResponse, error) {
	id, err := utils.ParseUUID(theaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater ID")
	}

	theater, err := s.repo.Theater.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get theater", zap.Error(err), zap.String("theater_id", theaterID))
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *theaterService) CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create theater validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	theater := &entity.Theater{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.repo.Theater.Create(ctx, theater); err != nil {
		s.log.Error("Failed to create theater", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create theater: %w", err)
	}

	s.log.Info("Theater created",
		zap.String("theater_id", theater.ID.String()),
		zap.String("name", theater.Name))

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}
