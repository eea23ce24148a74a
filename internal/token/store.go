// Package token persists the administrator's raw credential across restarts.
// The store is a single fixed slot: one credential, overwritten on login and
// removed on logout. No validation happens here.
package token

import "errors"

// SlotKey names the credential slot in keyed stores.
const SlotKey = "token"

// ErrNoToken is returned by Load when no credential has been saved.
var ErrNoToken = errors.New("no credential stored")

// Store is the single-slot credential store.
type Store interface {
	// Save overwrites the stored credential.
	Save(token string) error
	// Load returns the stored credential, or ErrNoToken when the slot is empty.
	Load() (string, error)
	// Clear empties the slot. Clearing an already-empty slot is not an error.
	Clear() error
}
