package request

type MovieRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	PosterURL       *string  `json:"poster_url,omitempty" validate:"omitempty,url"`
	BackdropURL     *string  `json:"backdrop_url,omitempty" validate:"omitempty,url"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=1,max=999"`
	Genres          []string `json:"genres" validate:"required,min=1,dive,min=1"`
	Languages       []string `json:"languages" validate:"required,min=1,dive,min=1"`
	Rating          float64  `json:"rating" validate:"min=0,max=10"`
	Votes           int      `json:"votes" validate:"min=0"`
	Price           float64  `json:"price" validate:"required,min=0"`
	YTCode          *string  `json:"yt_code,omitempty"`
}

// MovieUpdateRequest is an explicit patch struct: only non-nil fields are
// merged into the stored movie.
type MovieUpdateRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	PosterURL       *string  `json:"poster_url,omitempty" validate:"omitempty,url"`
	BackdropURL     *string  `json:"backdrop_url,omitempty" validate:"omitempty,url"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=999"`
	Genres          []string `json:"genres,omitempty" validate:"omitempty,min=1,dive,min=1"`
	Languages       []string `json:"languages,omitempty" validate:"omitempty,min=1,dive,min=1"`
	Rating          *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Votes           *int     `json:"votes,omitempty" validate:"omitempty,min=0"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	YTCode          *string  `json:"yt_code,omitempty"`
}

// MovieFilter mirrors the search screen: title substring plus any-overlap
// genre and language filters.
type MovieFilter struct {
	Query     string
	Genres    []string
	Languages []string
}
