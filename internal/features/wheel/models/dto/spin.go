package dto

// DrawRequest starts a spin for a contact.
type DrawRequest struct {
	ContactID string `json:"contactId"`
}

// DrawResponse carries the catalog index of the chosen segment.
type DrawResponse struct {
	Success bool `json:"success"`
	Index   int  `json:"index"`
}

// PrizeDescriptor is the prize echo the front end sends back on confirm,
// taken from the catalog entry at the drawn index.
type PrizeDescriptor struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// ConfirmRequest commits a previously drawn prize.
type ConfirmRequest struct {
	ContactID string          `json:"contactId"`
	Prize     PrizeDescriptor `json:"prize"`
}

// ConfirmResponse reports a committed play.
type ConfirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BusinessError is a game-rule rejection: HTTP 200, error flag set. It keeps
// expected outcomes (already played, not yet open) distinct from faults.
type BusinessError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
