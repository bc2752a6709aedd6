package book

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateStampsCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	service.now = func() time.Time { return fixedNow.In(time.FixedZone("CET", 3600)) }

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *Book) error {
		assert.Empty(t, b.ID)
		b.ID = testID
		return nil
	})

	got, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, testID, got.ID)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), got.CreatedAt)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
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

func TestService_UpdateLeavesCreatedAtUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	want := validInput().toBook(testID)
	mockRepo.EXPECT().Update(gomock.Any(), want).Return(nil)

	require.NoError(t, service.Update(context.Background(), testID, validInput()))
	assert.True(t, want.CreatedAt.IsZero())
}
