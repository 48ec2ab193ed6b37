package entity

type Movie struct {
	Base
	Title           string   `db:"title"`
	Description     *string  `db:"description"`
	PosterURL       *string  `db:"poster_url"`
	BackdropURL     *string  `db:"backdrop_url"`
	DurationMinutes int      `db:"duration_minutes"`
	Genres          []string `db:"genres"`
	Languages       []string `db:"languages"`
	Rating          float64  `db:"rating"`
	Votes           int      `db:"votes"`
	Price           float64  `db:"price"` // per-seat ticket price
	YTCode          *string  `db:"yt_code"`
}
