package request

type TheaterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required,min=1,max=200"`
}
