package response

import "movie-booking/internal/data/entity"

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID.String(),
		Name:     theater.Name,
		Location: theater.Location,
	}
}

func TheatersToResponse(theaters []*entity.Theater) []TheaterResponse {
	out := make([]TheaterResponse, 0, len(theaters))
	for _, t := range theaters {
		out = append(out, TheaterToResponse(t))
	}
	return out
}
