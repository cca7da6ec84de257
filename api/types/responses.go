package types

// MessageResponse carries a human-readable confirmation, used by the
// delete endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error contract of every endpoint: a
// human-readable message, a stable error code, and optional
// structured details (e.g. the list of missing required fields).
type ErrorResponse struct {
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// CreateEpisodeRequest is the JSON body of episode create/update
type CreateEpisodeRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PublicationDate string `json:"publicationDate"`
	AudioURL        string `json:"audioUrl"`
}
