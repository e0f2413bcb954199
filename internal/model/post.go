package model

// Post is a blog post as exposed by the upstream posts API.
// ID is assigned by the server on create and never changes afterwards.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PostDraft is the body of a create request: a Post without its ID.
type PostDraft struct {
	UserID int    `json:"userId" yaml:"user_id"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

// PostPatch carries the fields of an update. Nil fields are not sent.
type PostPatch struct {
	UserID *int    `json:"userId,omitempty" yaml:"user_id,omitempty"`
	Title  *string `json:"title,omitempty" yaml:"title,omitempty"`
	Body   *string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Merge returns p with every non-zero field of other laid over it.
// The ID of p is kept; update responses may echo only the fields that were sent.
func (p Post) Merge(other Post) Post {
	if other.UserID != 0 {
		p.UserID = other.UserID
	}
	if other.Title != "" {
		p.Title = other.Title
	}
	if other.Body != "" {
		p.Body = other.Body
	}
	return p
}

// Matches reports whether the post carries the same content as the draft.
func (p Post) Matches(d PostDraft) bool {
	return p.UserID == d.UserID && p.Title == d.Title && p.Body == d.Body
}
