package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error)
	FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, theater_id, show_date, show_time, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.Price,
		showtime.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
		)
		return fmt.Errorf("create showtime for movie %s: %w", showtime.MovieID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, show_date, show_time, price, created_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheaterID,
		&showtime.ShowDate,
		&showtime.ShowTime,
		&showtime.Price,
		&showtime.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, show_date, show_time, price, created_at
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY show_date, show_time
	`

	return r.findMany(ctx, query, movieID, "movie_id")
}

func (r *showtimeRepository) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, show_date, show_time, price, created_at
		FROM showtimes
		WHERE theater_id = $1
		ORDER BY show_date, show_time
	`

	return r.findMany(ctx, query, theaterID, "theater_id")
}

func (r *showtimeRepository) findMany(ctx context.Context, query string, id uuid.UUID, field string) ([]*entity.Showtime, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find showtimes",
			zap.Error(err),
			zap.String(field, id.String()),
		)
		return nil, fmt.Errorf("find showtimes by %s %s: %w", field, id.String(), err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheaterID,
			&showtime.ShowDate,
			&showtime.ShowTime,
			&showtime.Price,
			&showtime.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}
