package database

import "context"

// LocalStorage is the key/value contract the session store persists through.
// It mirrors the browser localStorage API: GetItem reports absence with ok=false.
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// DataStore defines the unified interface for all data operations needed by the client.
type DataStore interface {
	LocalStorage
	Keys(ctx context.Context) ([]string, error)
}
