package request

// UpdateProfileRequest is an explicit patch: only non-nil fields are merged
// into the profile, nothing else is updatable through this endpoint.
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}
