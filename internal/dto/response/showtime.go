package response

import "movie-booking/internal/data/entity"

type ShowtimeResponse struct {
	ID        string  `json:"id"`
	MovieID   string  `json:"movie_id"`
	TheaterID string  `json:"theater_id"`
	ShowDate  string  `json:"show_date"`
	ShowTime  string  `json:"show_time"`
	Price     float64 `json:"price"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		TheaterID: showtime.TheaterID.String(),
		ShowDate:  showtime.ShowDate.Format("2006-01-02"),
		ShowTime:  showtime.ShowTime,
		Price:     showtime.Price,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, 0, len(showtimes))
	for _, st := range showtimes {
		out = append(out, ShowtimeToResponse(st))
	}
	return out
}
