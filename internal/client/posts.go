package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"postboard/internal/model"
)

const (
	opListPosts    = "list posts"
	opGetPost      = "get post"
	opListComments = "list comments for post"
	opCreatePost   = "create post"
	opUpdatePost   = "update post"
	opDeletePost   = "delete post"
)

// ListPosts fetches every post in server order.
func (c *Client) ListPosts(ctx context.Context) (posts []model.Post, err error) {
	defer c.observe(opListPosts, time.Now(), &err)

	status, raw, err := c.do(ctx, http.MethodGet, "/posts", nil)
	if err != nil {
		return nil, &Error{Op: opListPosts, Status: status, Err: err}
	}
	if !ok(status) {
		return nil, &Error{Op: opListPosts, Status: status, Err: statusError(status)}
	}
	posts, err = decode[[]model.Post](postListSchema, raw)
	if err != nil {
		return nil, &Error{Op: opListPosts, Status: status, Err: err}
	}
	return posts, nil
}

// GetPost fetches a single post. A 404 yields ErrNotFound.
func (c *Client) GetPost(ctx context.Context, id int) (post model.Post, err error) {
	defer c.observe(opGetPost, time.Now(), &err)

	status, raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil)
	if err != nil {
		return model.Post{}, &Error{Op: opGetPost, ID: id, Status: status, Err: err}
	}
	if !ok(status) {
		return model.Post{}, &Error{Op: opGetPost, ID: id, Status: status, Err: statusError(status)}
	}
	post, err = decode[model.Post](postSchema, raw)
	if err != nil {
		return model.Post{}, &Error{Op: opGetPost, ID: id, Status: status, Err: err}
	}
	return post, nil
}

// ListComments fetches the comments attached to a post, in server order.
func (c *Client) ListComments(ctx context.Context, postID int) (comments []model.Comment, err error) {
	defer c.observe(opListComments, time.Now(), &err)

	status, raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d/comments", postID), nil)
	if err != nil {
		return nil, &Error{Op: opListComments, ID: postID, Status: status, Err: err}
	}
	if !ok(status) {
		return nil, &Error{Op: opListComments, ID: postID, Status: status, Err: statusError(status)}
	}
	comments, err = decode[[]model.Comment](commentListSchema, raw)
	if err != nil {
		return nil, &Error{Op: opListComments, ID: postID, Status: status, Err: err}
	}
	return comments, nil
}

// CreatePost submits a draft and returns the post with its server-assigned id.
func (c *Client) CreatePost(ctx context.Context, draft model.PostDraft) (post model.Post, err error) {
	defer c.observe(opCreatePost, time.Now(), &err)

	status, raw, err := c.do(ctx, http.MethodPost, "/posts", draft)
	if err != nil {
		return model.Post{}, &Error{Op: opCreatePost, Status: status, Err: err}
	}
	if !ok(status) {
		return model.Post{}, &Error{Op: opCreatePost, Status: status, Err: statusError(status)}
	}
	post, err = decode[model.Post](postSchema, raw)
	if err != nil {
		return model.Post{}, &Error{Op: opCreatePost, Status: status, Err: err}
	}
	return post, nil
}

// UpdatePost replaces the fields set in patch. The returned post may carry
// only the fields the server echoed back; see model.Post.Merge.
func (c *Client) UpdatePost(ctx context.Context, id int, patch model.PostPatch) (post model.Post, err error) {
	defer c.observe(opUpdatePost, time.Now(), &err)

	status, raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), patch)
	if err != nil {
		return model.Post{}, &Error{Op: opUpdatePost, ID: id, Status: status, Err: err}
	}
	if !ok(status) {
		return model.Post{}, &Error{Op: opUpdatePost, ID: id, Status: status, Err: statusError(status)}
	}
	post, err = decode[model.Post](postUpdateSchema, raw)
	if err != nil {
		return model.Post{}, &Error{Op: opUpdatePost, ID: id, Status: status, Err: err}
	}
	return post, nil
}

// DeletePost removes a post. It reports true iff the server answered 200;
// an error is returned only when no response was obtained.
func (c *Client) DeletePost(ctx context.Context, id int) (deleted bool, err error) {
	defer func(start time.Time) {
		var outcome error = err
		if err == nil && !deleted {
			outcome = ErrUnexpectedStatus
		}
		c.metrics.observe(opDeletePost, start, outcome)
	}(time.Now())

	status, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil)
	if err != nil {
		return false, &Error{Op: opDeletePost, ID: id, Status: status, Err: err}
	}
	return status == http.StatusOK, nil
}
