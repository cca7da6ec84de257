package podcasts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/castkeep/catalog-api/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	return NewService(NewRepository(setupTestDB(t)))
}

func TestService_Create(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	image := "/uploads/image-1-abc.png"
	summary, err := service.Create(ctx, "My Podcast", &image)
	require.NoError(t, err)
	assert.NotZero(t, summary.ID)
	assert.Equal(t, "My Podcast", summary.Title)
	require.NotNil(t, summary.ImageURL)
	assert.Equal(t, image, *summary.ImageURL)
}

func TestService_CreateWithoutImage(t *testing.T) {
	service := newTestService(t)

	summary, err := service.Create(context.Background(), "No Cover", nil)
	require.NoError(t, err)
	assert.Nil(t, summary.ImageURL)
}

func TestService_CreateRequiresTitle(t *testing.T) {
	service := newTestService(t)

	for _, title := range []string{"", "   "} {
		_, err := service.Create(context.Background(), title, nil)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeMissingField, appErr.Code)
	}
}

func TestService_List(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "Older", nil)
	require.NoError(t, err)
	newer, err := service.Create(ctx, "Newer", nil)
	require.NoError(t, err)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, int64(0), items[0].EpisodeCount)
}

func TestService_GetByID(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "Lookup", nil)
	require.NoError(t, err)

	found, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Lookup", found.Title)

	_, err = service.GetByID(ctx, 999999)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_UpdateKeepsImageWhenAbsent(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	image := "/uploads/image-1-original.png"
	created, err := service.Create(ctx, "Original", &image)
	require.NoError(t, err)

	// Title-only update leaves the cover untouched
	updated, err := service.Update(ctx, created.ID, "Renamed", nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, image, *updated.ImageURL)
}

func TestService_UpdateReplacesImage(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	image := "/uploads/image-1-original.png"
	created, err := service.Create(ctx, "Original", &image)
	require.NoError(t, err)

	replacement := "https://example.com/new-cover.png"
	updated, err := service.Update(ctx, created.ID, "Original", &replacement)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, replacement, *updated.ImageURL)
}

func TestService_UpdateValidation(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "Valid", nil)
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, "", nil)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeMissingField, appErr.Code)

	_, err = service.Update(ctx, 999999, "New Title", nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_Delete(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "Short-lived", nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, apperrors.IsNotFound(service.Delete(ctx, created.ID)))
}
