package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogService(movies ...*entity.Movie) (MovieService, *fakeMovieRepo) {
	movieRepo := newFakeMovieRepo(movies...)
	repo := &repository.Repository{Movie: movieRepo}
	config := &utils.Config{Redis: utils.RedisConfig{CacheTTL: 60}}
	return NewMovieService(repo, config, nil, testLogger()), movieRepo
}

func catalogMovie(title string, genres, languages []string) *entity.Movie {
	return &entity.Movie{
		Base:      entity.Base{ID: uuid.New()},
		Title:     title,
		Genres:    genres,
		Languages: languages,
		Price:     180,
	}
}

func TestGetMoviesFilter(t *testing.T) {
	svc, _ := catalogService(
		catalogMovie("Interstellar", []string{"Sci-Fi", "Drama"}, []string{"English"}),
		catalogMovie("Dangal", []string{"Drama", "Sports"}, []string{"Hindi"}),
		catalogMovie("Inception", []string{"Sci-Fi", "Thriller"}, []string{"English", "Hindi"}),
	)

	tests := []struct {
		name   string
		filter request.MovieFilter
		want   []string
	}{
		{
			name:   "no filter returns everything",
			filter: request.MovieFilter{},
			want:   []string{"Interstellar", "Dangal", "Inception"},
		},
		{
			name:   "title substring, case insensitive",
			filter: request.MovieFilter{Query: "inter"},
			want:   []string{"Interstellar"},
		},
		{
			name:   "any genre overlap",
			filter: request.MovieFilter{Genres: []string{"Sports", "Thriller"}},
			want:   []string{"Dangal", "Inception"},
		},
		{
			name:   "language filter",
			filter: request.MovieFilter{Languages: []string{"Hindi"}},
			want:   []string{"Dangal", "Inception"},
		},
		{
			name:   "filters combine",
			filter: request.MovieFilter{Query: "in", Genres: []string{"Sci-Fi"}, Languages: []string{"Hindi"}},
			want:   []string{"Inception"},
		},
		{
			name:   "no match is an empty list, not an error",
			filter: request.MovieFilter{Query: "nonexistent"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := svc.GetMovies(context.Background(), &tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(movies))
			for _, m := range movies {
				titles = append(titles, m.Title)
			}
			assert.ElementsMatch(t, tt.want, titles)
		})
	}
}

func TestGetMoviesEmptyCatalog(t *testing.T) {
	svc, _ := catalogService()

	movies, err := svc.GetMovies(context.Background(), &request.MovieFilter{Genres: []string{"Drama"}})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestUpdateMoviePatchMerge(t *testing.T) {
	movie := catalogMovie("Interstellar", []string{"Sci-Fi"}, []string{"English"})
	movie.Rating = 8.6
	svc, movieRepo := catalogService(movie)

	newTitle := "Interstellar (Remastered)"
	newPrice := 250.0
	_, err := svc.UpdateMovie(context.Background(), movie.ID.String(), &request.MovieUpdateRequest{
		Title: &newTitle,
		Price: &newPrice,
	})
	require.NoError(t, err)

	stored := movieRepo.movies[movie.ID]
	assert.Equal(t, "Interstellar (Remastered)", stored.Title)
	assert.InDelta(t, 250.0, stored.Price, 0.001)

	// Fields absent from the patch keep their stored values.
	assert.InDelta(t, 8.6, stored.Rating, 0.001)
	assert.Equal(t, []string{"Sci-Fi"}, stored.Genres)
	assert.Equal(t, []string{"English"}, stored.Languages)
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc, _ := catalogService()

	title := "Ghost"
	_, err := svc.UpdateMovie(context.Background(), uuid.NewString(), &request.MovieUpdateRequest{Title: &title})
	assert.ErrorContains(t, err, "not found")
}

func TestCreateMovieValidation(t *testing.T) {
	svc, movieRepo := catalogService()

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Title: "No duration"})
	assert.ErrorContains(t, err, "validation failed")
	assert.Empty(t, movieRepo.movies)
}

func TestDeleteMovie(t *testing.T) {
	movie := catalogMovie("Interstellar", []string{"Sci-Fi"}, []string{"English"})
	svc, movieRepo := catalogService(movie)

	require.NoError(t, svc.DeleteMovie(context.Background(), movie.ID.String()))
	assert.Empty(t, movieRepo.movies)
}
