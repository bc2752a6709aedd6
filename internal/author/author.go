package author

import "errors"

var (
	// ErrNotFound is returned when no author matches the identifier.
	ErrNotFound = errors.New("author not found")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid author id")
)

// Author represents a document in the authors collection.
type Author struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthYear int    `json:"birthYear"`
}

// Input is the body accepted by create and update. Every field must be
// present and non-zero, so a birthYear of 0 is rejected.
type Input struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	BirthYear int    `json:"birthYear" validate:"required"`
}

// ValidationMessage is the fixed message returned when Input is incomplete.
const ValidationMessage = "All fields are required"

func (in Input) toAuthor(id string) Author {
	return Author{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthYear: in.BirthYear,
	}
}
