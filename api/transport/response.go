package transport

import "github.com/taskpilot/client/domain"

// LoginResponse carries the tokens issued by a successful login.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int    `json:"expiresIn"`
}

// TasksResponse is the envelope returned by the task listing endpoint.
type TasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}
