// Package session owns the durable session record: the bearer token and the
// user profile it belongs to. The record survives restarts and is only ever
// written or cleared as a whole, so no caller can observe a token without a
// profile or vice versa.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmanhq/taskman-cli/internal/client/models"
	"github.com/taskmanhq/taskman-cli/internal/client/repositories/authstate"
	"github.com/taskmanhq/taskman-cli/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store reads and writes the durable session record.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted session, or nil when none is active. A record
// with only one of its two halves present, an unreadable profile, or an
// expired token is treated as no session and cleared so the next Load starts
// from a clean slate.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	repo := authstate.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	userRaw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	if token == nil && userRaw == nil {
		return nil, nil
	}
	if token == nil || userRaw == nil {
		// half a record is no record
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	user, err := models.UnmarshalProfile(userRaw)
	if err != nil {
		if cerr := s.Clear(ctx); cerr != nil {
			return nil, cerr
		}
		return nil, nil
	}

	if tokenExpired(string(token), time.Now()) {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &models.Session{Token: string(token), User: *user}, nil
}

// Save persists the session, token and profile together in one transaction.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	data, err := models.MarshalProfile(&sess.User)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := authstate.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, data)
	})
}

// Clear removes the whole durable record in one statement. Clearing an
// already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return authstate.NewSQLiteRepository(s.db).Clear(ctx)
}

// tokenExpired reports whether token is a JWT whose exp claim lies in the
// past. The token is otherwise opaque to the client: signatures are the
// authority's business, and tokens that are not JWTs (or carry no exp claim)
// are trusted until the server rejects them.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
