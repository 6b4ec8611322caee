// Package community provides the discussion forum view.
package community

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/messages"
	"github.com/medlink-care/medlink-cli/internal/adapters/driving/tui/styles"
	"github.com/medlink-care/medlink-cli/internal/core/domain"
	"github.com/medlink-care/medlink-cli/internal/core/ports/driving"
)

// View lists forum posts with their comments. Reactions are local tallies
// layered over the fetched counts; they are not sent anywhere.
type View struct {
	styles    *styles.Styles
	community driving.CommunityService

	posts         []domain.Post
	likeDeltas    map[int]int
	dislikeDeltas map[int]int
	selected      int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new community view.
func NewView(s *styles.Styles, community driving.CommunityService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		community:     community,
		likeDeltas:    make(map[int]int),
		dislikeDeltas: make(map[int]int),
		width:         80,
		height:        24,
	}
}

// Init triggers the initial post load.
func (v *View) Init() tea.Cmd {
	v.loading = true
	community := v.community
	return func() tea.Msg {
		posts, err := community.Posts(context.Background())
		return messages.PostsLoaded{Posts: posts, Err: err}
	}
}

// Update handles messages for the community view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.posts)-1 {
				v.selected++
			}
			return v, nil

		case "ctrl+r":
			return v, v.Init()

		case "+":
			if post, ok := v.selectedPost(); ok {
				v.likeDeltas[post.ID] = v.community.React(post.ID, true)
			}
			return v, nil

		case "-":
			if post, ok := v.selectedPost(); ok {
				v.dislikeDeltas[post.ID] = v.community.React(post.ID, false)
			}
			return v, nil
		}

	case messages.PostsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.posts = msg.Posts
			if v.selected >= len(v.posts) {
				v.selected = 0
			}
		}
		return v, nil
	}

	return v, nil
}

func (v *View) selectedPost() (domain.Post, bool) {
	if v.selected >= len(v.posts) {
		return domain.Post{}, false
	}
	return v.posts[v.selected], true
}

// View renders the post list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Community"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading posts..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("community unavailable"))
		return b.String()
	case len(v.posts) == 0:
		b.WriteString(v.styles.Muted.Render("No posts yet."))
		return b.String()
	}

	for i, post := range v.posts {
		cursor := "  "
		title := v.styles.Normal.Render(post.Title)
		if i == v.selected {
			cursor = "> "
			title = v.styles.Selected.Render(post.Title)
		}

		likes := post.Likes + v.likeDeltas[post.ID]
		dislikes := post.Dislikes + v.dislikeDeltas[post.ID]
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, title,
			v.styles.Muted.Render(fmt.Sprintf("by %s · %d likes · %d dislikes · %d comments",
				post.Author, likes, dislikes, len(post.Comments)))))

		if i == v.selected {
			if post.Desc != "" {
				b.WriteString("    " + v.styles.Muted.Render(post.Desc) + "\n")
			}
			for _, comment := range post.Comments {
				b.WriteString(fmt.Sprintf("    - %s: %s\n",
					v.styles.Subtitle.Render(comment.Author),
					v.styles.Normal.Render(comment.Comment)))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [+/-] React  [ctrl+r] Refresh  [esc] Menu"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Posts returns the currently loaded posts.
func (v *View) Posts() []domain.Post {
	return v.posts
}
