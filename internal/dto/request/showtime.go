package request

type ShowtimeRequest struct {
	MovieID   string  `json:"movie_id" validate:"required,uuid"`
	TheaterID string  `json:"theater_id" validate:"required,uuid"`
	ShowDate  string  `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime  string  `json:"show_time" validate:"required"`
	Price     float64 `json:"price" validate:"required,min=0"`
}
