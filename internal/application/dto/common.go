package dto

// PageRequest is list pagination.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applies defaults for zero values.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse is the HTTP error body. Message is user-facing (Bulgarian);
// Code is a stable machine-readable identifier.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
