package driving

import (
	"context"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

// CommunityService provides the discussion forum: posts are fetched
// wholesale and comment addition triggers a full refetch. Like/dislike
// counts are deliberately ephemeral, local-only state (never persisted to
// the collaborator).
type CommunityService interface {
	// Posts returns all forum posts, newest ordering as served.
	Posts(ctx context.Context) ([]domain.Post, error)

	// CreatePost publishes a new discussion.
	CreatePost(ctx context.Context, post domain.NewPost) error

	// AddComment adds a comment to a post and returns the refetched post
	// list.
	AddComment(ctx context.Context, postID int, comment string) ([]domain.Post, error)

	// React bumps the local-only like or dislike tally for a post and
	// returns the new delta for that tally. Likes and dislikes are
	// separate counters; nothing is sent to the collaborator.
	React(postID int, like bool) int
}
