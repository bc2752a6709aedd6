package author

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateReturnsGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *Author) error {
		assert.Empty(t, a.ID)
		a.ID = testID
		return nil
	})

	got, err := service.Create(context.Background(), Input{FirstName: "Ada", LastName: "Lovelace", BirthYear: 1815})
	require.NoError(t, err)
	assert.Equal(t, Author{ID: testID, FirstName: "Ada", LastName: "Lovelace", BirthYear: 1815}, got)
}

func TestService_ListNeverNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_UpdateUsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Replace(gomock.Any(), Author{ID: testID, FirstName: "Ada", LastName: "King", BirthYear: 1815}).Return(ErrNotFound)

	err := service.Update(context.Background(), testID, Input{FirstName: "Ada", LastName: "King", BirthYear: 1815})
	assert.ErrorIs(t, err, ErrNotFound)
}
