package models

type SearchRequest struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Bags         int    `json:"bags"`
	ReturnFlight bool   `json:"return_flight"`
}

func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.Bags < 0 {
		return ErrNegativeBags
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "origin is required"
	ErrMissingDestination ValidationError = "destination is required"
	ErrNegativeBags       ValidationError = "bags must not be negative"
)
