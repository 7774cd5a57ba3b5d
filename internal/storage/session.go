package storage

import "context"

// SessionData represents the persisted authentication session.
// Tokens are stored as received from the identity provider; the token
// acquisition flow itself lives outside this application.
type SessionData struct {
	Subject     string `json:"subject"`      // Subject стабильный идентификатор пользователя (sub)
	AccessToken string `json:"access_token"` // AccessToken токен доступа OIDC-провайдера
	IDToken     string `json:"id_token"`     // IDToken опциональный identity token
	SavedAt     int64  `json:"saved_at"`     // SavedAt время сохранения сессии, unix ms
}

// SessionStorage defines interface for persisting the session between runs
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (sign-out)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error
}
