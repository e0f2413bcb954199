package controller

import "postboard/internal/model"

// State is what the page renders. Comments belong to Selected and are only
// meaningful while Selected is set.
type State struct {
	Posts     []model.Post    `json:"posts"`
	Selected  *model.Post     `json:"selected,omitempty"`
	Comments  []model.Comment `json:"comments"`
	LastError string          `json:"lastError,omitempty"`
	Notice    string          `json:"notice,omitempty"`
}

// Visible returns the first n posts; n <= 0 means all of them.
func (s State) Visible(n int) []model.Post {
	if n <= 0 || n >= len(s.Posts) {
		return s.Posts
	}
	return s.Posts[:n]
}

func (s State) clone() State {
	out := State{
		Posts:     append([]model.Post(nil), s.Posts...),
		Comments:  append([]model.Comment(nil), s.Comments...),
		LastError: s.LastError,
		Notice:    s.Notice,
	}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}
