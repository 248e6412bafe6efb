// Package client defines the gateway to the remote TaskManager authority.
// Every operation is a single request/response pair; the gateway does not
// retry and reports failures as typed errors (see errors.go).
package client

import (
	"context"

	"github.com/taskmanhq/taskman-cli/internal/client/models"
)

// LoginResult is the payload of a successful login: the issued bearer token
// and the profile it authenticates.
type LoginResult struct {
	Token string
	User  models.UserProfile
}

// Client is the remote authentication gateway consumed by the services layer.
//
// Contract:
//   - Login: exchange credentials for a token and profile.
//   - Register: create an account; no token is issued.
//   - DeleteAccount: irreversibly remove the account with the given id.
//   - Ping: check service liveness.
//   - SetToken: install (or clear, with "") the bearer token used by
//     authenticated calls.
//   - Close: release underlying transport resources.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password string) (*models.UserProfile, error)
	DeleteAccount(ctx context.Context, userID string) error
	Ping(ctx context.Context) error
	SetToken(token string)
	Close() error
}
