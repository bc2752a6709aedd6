package author

import (
	"context"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every author.
func (s *Service) List(ctx context.Context) ([]Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if authors == nil {
		authors = []Author{}
	}
	return authors, nil
}

// Get returns an author by its identifier.
func (s *Service) Get(ctx context.Context, id string) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new author and returns it with its identifier set.
func (s *Service) Create(ctx context.Context, in Input) (Author, error) {
	a := in.toAuthor("")
	if err := s.repo.Create(ctx, &a); err != nil {
		return Author{}, err
	}
	return a, nil
}

// Update fully replaces the author identified by id.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	return s.repo.Replace(ctx, in.toAuthor(id))
}

// Delete removes the author identified by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
