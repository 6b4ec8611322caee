package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

func TestCommunityService_PostsNeverReturnsNilSlice(t *testing.T) {
	gw := newFakeGateway()
	gw.PostsFn = func() ([]domain.Post, error) { return nil, nil }

	svc := NewCommunityService(gw)
	posts, err := svc.Posts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestCommunityService_CreatePostValidates(t *testing.T) {
	svc := NewCommunityService(newFakeGateway())

	assert.ErrorIs(t, svc.CreatePost(context.Background(), domain.NewPost{Title: "t"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.CreatePost(context.Background(), domain.NewPost{Desc: "d"}), domain.ErrInvalidInput)
	assert.NoError(t, svc.CreatePost(context.Background(), domain.NewPost{Title: "t", Desc: "d"}))
}

func TestCommunityService_AddCommentRefetchesPosts(t *testing.T) {
	gw := newFakeGateway()
	gw.PostsFn = func() ([]domain.Post, error) {
		return []domain.Post{{ID: 1, Title: "ward handover tips", Comments: []domain.Comment{{Comment: "useful"}}}}, nil
	}

	svc := NewCommunityService(gw)
	posts, err := svc.AddComment(context.Background(), 1, "useful")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, gw.postsCallCount(), "comments come back via a wholesale refetch")
}

func TestCommunityService_AddCommentValidatesAndPropagates(t *testing.T) {
	gw := newFakeGateway()
	svc := NewCommunityService(gw)

	_, err := svc.AddComment(context.Background(), 1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	gw.AddCommentFn = func(int, string) error { return errors.New("backend unavailable") }
	_, err = svc.AddComment(context.Background(), 1, "hi")
	require.Error(t, err)
	assert.Zero(t, gw.postsCallCount(), "no refetch after a failed comment")
}

func TestCommunityService_ReactIsLocalOnly(t *testing.T) {
	gw := newFakeGateway()
	svc := NewCommunityService(gw)

	assert.Equal(t, 1, svc.React(3, true))
	assert.Equal(t, 2, svc.React(3, true))
	assert.Equal(t, 1, svc.React(4, false))

	// Tallies never reach the network.
	assert.Zero(t, gw.postsCallCount())
}

func TestCommunityService_ReactKeepsLikesAndDislikesApart(t *testing.T) {
	svc := NewCommunityService(newFakeGateway())

	assert.Equal(t, 1, svc.React(7, true))
	assert.Equal(t, 1, svc.React(7, false), "a dislike starts its own tally")
	assert.Equal(t, 2, svc.React(7, false))
	assert.Equal(t, 2, svc.React(7, true), "dislikes never drain the like tally")
}
