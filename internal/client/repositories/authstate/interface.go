// Package authstate persists the client's durable authentication record as
// key-value rows in the local database. The session store composes these
// primitives into atomic both-or-neither writes.
package authstate

import "context"

// Repository is a small key-value store over the auth_state table.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
