package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/petnextdoor/pet_next_door/internal/models"
	"github.com/sirupsen/logrus"
)

// PostRepository defines the persistence contract for community posts and
// comments. GetByID loads the post together with its comments.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]*models.Post, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// CommunityService defines the business logic for the community feed.
type CommunityService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, caption, photoURL string) (*models.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]*models.Post, error)
	AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*models.Comment, error)
}

type communityService struct {
	repo   PostRepository
	logger *logrus.Logger
}

func NewCommunityService(repo PostRepository, logger *logrus.Logger) CommunityService {
	return &communityService{repo: repo, logger: logger}
}

// CreatePost publishes a post to the community feed.
func (s *communityService) CreatePost(ctx context.Context, userID uuid.UUID, caption, photoURL string) (*models.Post, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, fmt.Errorf("caption is required: %w", ErrEmptyField)
	}

	post := &models.Post{
		UserID:   userID,
		Caption:  caption,
		PhotoURL: photoURL,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		s.logger.WithError(err).Error("Failed to create post in repository")
		return nil, fmt.Errorf("service: could not create post: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service": "community",
		"post_id": post.ID,
		"user_id": userID,
	}).Info("Post created")
	return post, nil
}

// GetPost returns a post with its comments.
func (s *communityService) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch post: %w", err)
	}
	return post, nil
}

// ListPosts returns the community feed, newest first, with pagination.
func (s *communityService) ListPosts(ctx context.Context, page, pageSize int) ([]*models.Post, error) {
	page, pageSize = normalizePage(page, pageSize)

	posts, err := s.repo.ListPosts(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list posts: %w", err)
	}
	return posts, nil
}

// AddComment attaches a comment to an existing post.
func (s *communityService) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrEmptyField)
	}

	// Make sure the post exists so the caller gets 404 instead of an FK error.
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not fetch post for comment: %w", err)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("service: could not create comment: %w", err)
	}
	return comment, nil
}
