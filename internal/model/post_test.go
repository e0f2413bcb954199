package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_Merge(t *testing.T) {
	base := Post{ID: 3, UserID: 1, Title: "old", Body: "body"}

	t.Run("partial response keeps untouched fields", func(t *testing.T) {
		got := base.Merge(Post{ID: 3, Title: "Updated Title!"})
		assert.Equal(t, Post{ID: 3, UserID: 1, Title: "Updated Title!", Body: "body"}, got)
	})

	t.Run("id of the receiver wins", func(t *testing.T) {
		got := base.Merge(Post{ID: 99, Body: "new"})
		assert.Equal(t, 3, got.ID)
		assert.Equal(t, "new", got.Body)
	})
}

func TestPost_Matches(t *testing.T) {
	d := PostDraft{UserID: 1, Title: "t", Body: "b"}
	assert.True(t, Post{ID: 101, UserID: 1, Title: "t", Body: "b"}.Matches(d))
	assert.False(t, Post{ID: 101, UserID: 2, Title: "t", Body: "b"}.Matches(d))
}
