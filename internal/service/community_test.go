package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/petnextdoor/pet_next_door/internal/service"
	"github.com/petnextdoor/pet_next_door/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCommunityService builds a community service with a mocked repository.
func newTestCommunityService(t *testing.T) (service.CommunityService, *mocks.MockPostRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPostRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	svc := service.NewCommunityService(repo, logger)
	return svc, repo
}

func TestCreatePost_Success(t *testing.T) {
	svc, repo := newTestCommunityService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().
		CreatePost(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, post *models.Post) error {
			post.ID = uuid.New()
			return nil
		}).
		Times(1)

	post, err := svc.CreatePost(ctx, userID, "First day at the dog park", "https://cdn.example.com/park.jpg")

	require.NoError(t, err)
	assert.Equal(t, userID, post.UserID)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestCreatePost_BlankCaption(t *testing.T) {
	svc, _ := newTestCommunityService(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, uuid.New(), "   ", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmptyField)
}

func TestAddComment_Success(t *testing.T) {
	svc, repo := newTestCommunityService(t)
	ctx := context.Background()
	userID := uuid.New()
	postID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, postID).
		Return(&models.Post{ID: postID}, nil).
		Times(1)

	repo.EXPECT().
		CreateComment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, comment *models.Comment) error {
			comment.ID = uuid.New()
			return nil
		}).
		Times(1)

	comment, err := svc.AddComment(ctx, userID, postID, "What a good boy!")

	require.NoError(t, err)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, userID, comment.UserID)
}

func TestAddComment_PostNotFound(t *testing.T) {
	svc, repo := newTestCommunityService(t)
	ctx := context.Background()
	postID := uuid.New()

	repo.EXPECT().
		GetByID(ctx, postID).
		Return(nil, service.ErrNotFound).
		Times(1)

	_, err := svc.AddComment(ctx, uuid.New(), postID, "Adorable!")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAddComment_BlankText(t *testing.T) {
	svc, _ := newTestCommunityService(t)
	ctx := context.Background()

	_, err := svc.AddComment(ctx, uuid.New(), uuid.New(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrEmptyField)
}
