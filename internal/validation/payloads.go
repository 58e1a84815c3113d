package validation

// NewTopic is the body of POST /api/topics
type NewTopic struct {
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// NewArticle is the body of POST /api/articles
type NewArticle struct {
	Author        string `json:"author" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	Topic         string `json:"topic" binding:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// VotePatch is the body of PATCH /api/articles/:id and /api/comments/:id.
// IncVotes is a pointer so that an explicit zero is accepted.
type VotePatch struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}

// NewComment is the body of POST /api/articles/:id/comments
type NewComment struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}
