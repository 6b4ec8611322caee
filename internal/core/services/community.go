package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driven"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Ensure CommunityService implements the interface.
var _ driving.CommunityService = (*CommunityService)(nil)

// CommunityService provides the discussion forum. Posts are always fetched
// wholesale; comment addition refetches instead of appending locally.
// Like/dislike reactions are explicitly ephemeral, local-only tallies: the
// collaborator exposes no reaction endpoint, so they reset on restart.
type CommunityService struct {
	api driven.APIGateway

	mu       sync.Mutex
	likes    map[int]int // postID -> local like delta
	dislikes map[int]int // postID -> local dislike delta
}

// NewCommunityService creates a community service over the gateway.
func NewCommunityService(api driven.APIGateway) *CommunityService {
	return &CommunityService{
		api:      api,
		likes:    make(map[int]int),
		dislikes: make(map[int]int),
	}
}

// Posts returns all forum posts.
func (s *CommunityService) Posts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.api.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// CreatePost publishes a new discussion.
func (s *CommunityService) CreatePost(ctx context.Context, post domain.NewPost) error {
	if post.Title == "" || post.Desc == "" {
		return domain.ErrInvalidInput
	}
	if err := s.api.AddPost(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	logger.Info("post created: %q", post.Title)
	return nil
}

// AddComment adds a comment to a post and returns the refetched post list.
// A failed refetch after a successful comment reports only the refetch step.
func (s *CommunityService) AddComment(ctx context.Context, postID int, comment string) ([]domain.Post, error) {
	if comment == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := s.api.AddComment(ctx, postID, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("refetch after comment: %w", err)
	}
	return posts, nil
}

// React bumps the local-only like or dislike tally for a post and returns
// the new delta for that tally. Likes and dislikes are separate counters,
// matching the collaborator's post shape. Nothing is sent over the network.
func (s *CommunityService) React(postID int, like bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if like {
		s.likes[postID]++
		return s.likes[postID]
	}
	s.dislikes[postID]++
	return s.dislikes[postID]
}
