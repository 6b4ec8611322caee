package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/medlink-care/medlink-cli/internal/core/domain"
)

var (
	communityPostTitle string
	communityPostDesc  string
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Browse the discussion board",
	RunE:  runCommunityPosts,
}

var communityPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List discussion posts",
	RunE:  runCommunityPosts,
}

var communityPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a new discussion post",
	Long: `Publish a new discussion post.

Examples:
  medlink community post --title "Dosage question" --desc "..."`,
	RunE: runCommunityPost,
}

var communityCommentCmd = &cobra.Command{
	Use:   "comment [post-id] [text]",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommunityComment,
}

func init() {
	communityPostCmd.Flags().StringVar(&communityPostTitle, "title", "", "post title")
	communityPostCmd.Flags().StringVar(&communityPostDesc, "desc", "", "post body")

	communityCmd.AddCommand(communityPostsCmd)
	communityCmd.AddCommand(communityPostCmd)
	communityCmd.AddCommand(communityCommentCmd)
	rootCmd.AddCommand(communityCmd)
}

func runCommunityPosts(cmd *cobra.Command, _ []string) error {
	if communityService == nil {
		return errors.New("community service not configured")
	}

	posts, err := communityService.Posts(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}

	printPosts(cmd, posts)
	return nil
}

func runCommunityPost(cmd *cobra.Command, _ []string) error {
	if communityService == nil {
		return errors.New("community service not configured")
	}
	if communityPostTitle == "" {
		return errors.New("--title is required")
	}

	post := domain.NewPost{
		Title: communityPostTitle,
		Desc:  communityPostDesc,
	}
	if err := communityService.CreatePost(context.Background(), post); err != nil {
		return fmt.Errorf("failed to publish post: %w", err)
	}

	cmd.Printf("Published: %s\n", communityPostTitle)
	return nil
}

func runCommunityComment(cmd *cobra.Command, args []string) error {
	if communityService == nil {
		return errors.New("community service not configured")
	}

	postID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post id: %s", args[0])
	}

	posts, err := communityService.AddComment(context.Background(), postID, args[1])
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	cmd.Println("Comment added.")
	printPosts(cmd, posts)
	return nil
}

func printPosts(cmd *cobra.Command, posts []domain.Post) {
	if len(posts) == 0 {
		cmd.Println("No posts yet.")
		return
	}

	cmd.Println("Posts:")
	for i := range posts {
		p := posts[i]
		cmd.Printf("  [%d] %s by %s\n", p.ID, p.Title, p.Author)
		if p.Desc != "" {
			cmd.Printf("      %s\n", p.Desc)
		}
		cmd.Printf("      %d likes, %d dislikes, %d comments\n",
			p.Likes, p.Dislikes, len(p.Comments))
	}
}
