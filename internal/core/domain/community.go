package domain

// Comment is one reply on a community post.
type Comment struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Post is one community forum discussion. Posts are fetched wholesale;
// adding a comment triggers a full refetch rather than a local append.
type Post struct {
	ID             int       `json:"id"`
	Author         string    `json:"author"`
	UserType       Role      `json:"userType"`
	Title          string    `json:"title"`
	Desc           string    `json:"desc"`
	Tags           []string  `json:"tags"`
	DoctorsRelated []string  `json:"doctors_related"`
	Likes          int       `json:"likes"`
	Dislikes       int       `json:"dislikes"`
	Comments       []Comment `json:"comments"`
	Date           string    `json:"date"`
}

// NewPost is the payload for creating a community post.
type NewPost struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}
