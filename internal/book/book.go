package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid book id")
)

// Book represents a document in the books collection. Author is free text
// and is not checked against the authors collection. The eight attributes
// hold whatever JSON value the client sent.
type Book struct {
	ID        string    `json:"_id"`
	Title     any       `json:"title"`
	Author    any       `json:"author"`
	Year      any       `json:"year"`
	Genre     any       `json:"genre"`
	Place     any       `json:"place"`
	Pages     any       `json:"pages"`
	Publisher any       `json:"publisher"`
	ISBN      any       `json:"isbn"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input is the body accepted by create and update. Each attribute must be
// truthy; its type is not checked, so "year": "1851" and a numeric isbn
// are both accepted while "pages": 0 is not.
type Input struct {
	Title     any `json:"title" validate:"truthy"`
	Author    any `json:"author" validate:"truthy"`
	Year      any `json:"year" validate:"truthy"`
	Genre     any `json:"genre" validate:"truthy"`
	Place     any `json:"place" validate:"truthy"`
	Pages     any `json:"pages" validate:"truthy"`
	Publisher any `json:"publisher" validate:"truthy"`
	ISBN      any `json:"isbn" validate:"truthy"`
}

// ValidationMessage is the fixed message returned when Input is incomplete.
const ValidationMessage = "title, author, year, genre, place, pages, publisher, and isbn are required"

func (in Input) toBook(id string) Book {
	return Book{
		ID:        id,
		Title:     in.Title,
		Author:    in.Author,
		Year:      in.Year,
		Genre:     in.Genre,
		Place:     in.Place,
		Pages:     in.Pages,
		Publisher: in.Publisher,
		ISBN:      in.ISBN,
	}
}
