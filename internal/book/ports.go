package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	// Create stores b and sets b.ID to the generated identifier.
	Create(ctx context.Context, b *Book) error
	// Update overwrites every attribute of the stored book except CreatedAt.
	// It returns ErrNotFound only when no document has b.ID, even if the
	// stored values are already identical.
	Update(ctx context.Context, b Book) error
	Delete(ctx context.Context, id string) error
}
