package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const movieCacheKey = "catalog:movies"

type MovieService interface {
	GetMovies(ctx context.Context, filter *request.MovieFilter) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo     *repository.Repository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	config *utils.Config,
	cache *redis.Client,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:     repo,
		cache:    cache,
		cacheTTL: time.Duration(config.Redis.CacheTTL) * time.Second,
		log:      log.With(zap.String("service", "movie")),
	}
}

// GetMovies loads the full catalog (read-through cache in front of the
// database) and applies the search filters in memory. The catalog is small;
// this mirrors how the browse screens filter a single fetched list.
func (s *movieService) GetMovies(ctx context.Context, filter *request.MovieFilter) ([]response.MovieResponse, error) {
	movies, err := s.loadCatalog(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	if filter != nil {
		movies = filterMovies(movies, filter)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Description:     req.Description,
		PosterURL:       req.PosterURL,
		BackdropURL:     req.BackdropURL,
		DurationMinutes: req.DurationMinutes,
		Genres:          req.Genres,
		Languages:       req.Languages,
		Rating:          req.Rating,
		Votes:           req.Votes,
		Price:           req.Price,
		YTCode:          req.YTCode,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.invalidateCatalog(ctx)
	s.log.Info("Movie created", zap.String("movie_id", movie.ID.String()), zap.String("title", movie.Title))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie merges the patch field by field into the stored movie.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.BackdropURL != nil {
		movie.BackdropURL = req.BackdropURL
	}
	if req.DurationMinutes != nil {
		movie.DurationMinutes = *req.DurationMinutes
	}
	if req.Genres != nil {
		movie.Genres = req.Genres
	}
	if req.Languages != nil {
		movie.Languages = req.Languages
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.Votes != nil {
		movie.Votes = *req.Votes
	}
	if req.Price != nil {
		movie.Price = *req.Price
	}
	if req.YTCode != nil {
		movie.YTCode = req.YTCode
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.invalidateCatalog(ctx)
	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := utils.ParseUUID(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.invalidateCatalog(ctx)
	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// loadCatalog returns the full movie list, preferring the cache. Cache
// failures degrade to the database; they never fail the request.
func (s *movieService) loadCatalog(ctx context.Context) ([]*entity.Movie, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, movieCacheKey).Bytes()
		if err == nil {
			var movies []*entity.Movie
			if err := json.Unmarshal(cached, &movies); err != nil {
				s.log.Warn("Failed to decode cached catalog", zap.Error(err))
			} else {
				return movies, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("Failed to read catalog cache", zap.Error(err))
		}
	}

	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(movies); err == nil {
			if err := s.cache.Set(ctx, movieCacheKey, data, s.cacheTTL).Err(); err != nil {
				s.log.Warn("Failed to write catalog cache", zap.Error(err))
			}
		}
	}

	return movies, nil
}

func (s *movieService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, movieCacheKey).Err(); err != nil {
		s.log.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

// filterMovies keeps movies whose title contains the query (case insensitive)
// and that overlap any requested genre and any requested language. Empty
// filters match everything; an empty result is a valid answer, not an error.
func filterMovies(movies []*entity.Movie, filter *request.MovieFilter) []*entity.Movie {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]*entity.Movie, 0, len(movies))
	for _, m := range movies {
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		if len(filter.Genres) > 0 && !overlaps(m.Genres, filter.Genres) {
			continue
		}
		if len(filter.Languages) > 0 && !overlaps(m.Languages, filter.Languages) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func overlaps(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
