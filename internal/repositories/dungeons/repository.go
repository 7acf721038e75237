// Package dungeons provides the repository interface and types for storing
// composed generation results. The generation core itself is persistence
// free; this repository is caller-side infrastructure for keeping generated
// dungeons addressable by ID.
package dungeons

import (
	"context"
	"time"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonsmock github.com/dungeonforge/dungeon-api/internal/repositories/dungeons Repository

// StoredDungeon wraps a composed generation result with storage bookkeeping
type StoredDungeon struct {
	// Unique storage identifier
	ID string `json:"id"`

	// The composed generation output, stored verbatim
	Result *entities.CompleteDungeon `json:"result"`

	// When this record was stored
	CreatedAt time.Time `json:"created_at"`

	// When this record expires; zero means no expiry
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// SaveInput contains parameters for storing a generation result
type SaveInput struct {
	Result *entities.CompleteDungeon

	// Optional TTL; zero stores without expiry
	TTL time.Duration
}

// SaveOutput is the response from storing a generation result
type SaveOutput struct {
	Dungeon *StoredDungeon
}

// GetInput contains parameters for fetching a stored result
type GetInput struct {
	ID string
}

// GetOutput is the response from fetching a stored result
type GetOutput struct {
	Dungeon *StoredDungeon
}

// DeleteInput contains parameters for deleting a stored result
type DeleteInput struct {
	ID string
}

// DeleteOutput is the response from deleting a stored result
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for dungeon storage
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
