package http

// CallbackRequest struct - Query parameters the provider appends to the redirect URI
type CallbackRequest struct {
	Code  string `query:"code" validate:"omitempty,max=2048"`
	State string `query:"state" validate:"omitempty,max=256"`
	Error string `query:"error" validate:"omitempty,max=256"`
}
