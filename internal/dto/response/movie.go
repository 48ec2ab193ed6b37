package response

import "movie-booking/internal/data/entity"

type MovieResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     *string  `json:"description,omitempty"`
	PosterURL       *string  `json:"poster_url,omitempty"`
	BackdropURL     *string  `json:"backdrop_url,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Genres          []string `json:"genres"`
	Languages       []string `json:"languages"`
	Rating          float64  `json:"rating"`
	Votes           int      `json:"votes"`
	Price           float64  `json:"price"`
	YTCode          *string  `json:"yt_code,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		Description:     movie.Description,
		PosterURL:       movie.PosterURL,
		BackdropURL:     movie.BackdropURL,
		DurationMinutes: movie.DurationMinutes,
		Genres:          movie.Genres,
		Languages:       movie.Languages,
		Rating:          movie.Rating,
		Votes:           movie.Votes,
		Price:           movie.Price,
		YTCode:          movie.YTCode,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToResponse(m))
	}
	return out
}
