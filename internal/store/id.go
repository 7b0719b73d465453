package store

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// idLength gives 40 bits of entropy. The id ends up in printed QR codes, so
// it has to be unique and short, not unguessable.
const idLength = 10

// NewEventID returns a fresh lowercase hex token for use as an event key.
func NewEventID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:idLength]
}
