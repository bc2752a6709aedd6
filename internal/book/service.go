package book

import (
	"context"
	"time"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Get returns a book by its identifier.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stamps CreatedAt and inserts the book.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	b := in.toBook("")
	// BSON dates carry millisecond precision.
	b.CreatedAt = s.now().UTC().Truncate(time.Millisecond)
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update replaces the attributes of the book identified by id.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	return s.repo.Update(ctx, in.toBook(id))
}

// Delete removes the book identified by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
