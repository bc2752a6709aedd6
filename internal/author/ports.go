package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// Repository defines the contract for author data storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id string) (Author, error)
	// Create stores a and sets a.ID to the generated identifier.
	Create(ctx context.Context, a *Author) error
	// Replace overwrites the stored document with a. It returns ErrNotFound
	// when no document has a.ID.
	Replace(ctx context.Context, a Author) error
	Delete(ctx context.Context, id string) error
}
