package handler

import "github.com/sistema-academico/academia-api/internal/core/domain"

// The API speaks one envelope: {status, message?, data?/user?/token?}.
// Spanish messages match the envelope contract clients already consume.

type statusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
}

type dataResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type userResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}

type errorResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type tokenResponse struct {
	Status    bool         `json:"status"`
	Message   string       `json:"message,omitempty"`
	User      *domain.User `json:"user,omitempty"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
}
