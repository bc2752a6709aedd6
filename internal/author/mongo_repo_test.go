package author

import (
	"context"
	"testing"
	"time"

	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoRepo_Lifecycle(t *testing.T) {
	repo := NewMongoRepo(testutil.NewTestDatabase(t), 5*time.Second)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	a := Author{FirstName: "Ada", LastName: "Lovelace", BirthYear: 1815}
	require.NoError(t, repo.Create(ctx, &a))
	require.NotEmpty(t, a.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	updated := Author{ID: a.ID, FirstName: "Augusta Ada", LastName: "King", BirthYear: 1815}
	require.NoError(t, repo.Replace(ctx, updated))
	got, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// Replacing with identical values still finds the document.
	require.NoError(t, repo.Replace(ctx, updated))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Author{updated}, list)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)
}

func TestMongoRepo_MissingAndInvalidIDs(t *testing.T) {
	repo := NewMongoRepo(testutil.NewTestDatabase(t), 5*time.Second)
	ctx := context.Background()

	err := repo.Replace(ctx, Author{ID: "65f1a2b3c4d5e6f708091a2b", FirstName: "A", LastName: "B", BirthYear: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(ctx, "123"), ErrInvalidID)
	assert.ErrorIs(t, repo.Replace(ctx, Author{ID: "zzz"}), ErrInvalidID)
}

func TestParseID(t *testing.T) {
	_, err := parseID("65f1a2b3c4d5e6f708091a2b")
	assert.NoError(t, err)

	_, err = parseID("65f1a2b3")
	assert.ErrorIs(t, err, ErrInvalidID)
}
