// Package controller holds the page state and turns page events into calls
// on the posts API.
//
// Actions are independent: nothing orders or deduplicates them. State is
// locked only while it is written, never across a network call, so two
// overlapping actions race and the last write wins.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"postboard/internal/config"
	"postboard/internal/logging"
	"postboard/internal/model"
)

var ErrDeleteRejected = errors.New("delete not acknowledged by server")

// PostAPI is the set of remote operations the controller drives.
type PostAPI interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id int) (model.Post, error)
	ListComments(ctx context.Context, postID int) ([]model.Comment, error)
	CreatePost(ctx context.Context, draft model.PostDraft) (model.Post, error)
	UpdatePost(ctx context.Context, id int, patch model.PostPatch) (model.Post, error)
	DeletePost(ctx context.Context, id int) (bool, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPayloads sets the bodies sent by Create and Update.
func WithPayloads(p config.Payloads) Option {
	return func(c *Controller) { c.payloads = p }
}

// WithPageSize sets how many posts the page shows.
func WithPageSize(n int) Option {
	return func(c *Controller) { c.pageSize = n }
}

// WithLogger sets where action failures are logged.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller is safe for concurrent use.
type Controller struct {
	api      PostAPI
	payloads config.Payloads
	pageSize int
	log      *logging.Logger
	tracer   trace.Tracer

	mu      sync.Mutex
	state   State
	mounted bool
}

// New returns a Controller with empty state.
func New(api PostAPI, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		payloads: config.DefaultPayloads(),
		pageSize: 5,
		log:      logging.Default(),
		tracer:   otel.Tracer("postboard/controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageSize is the number of posts shown on the page.
func (c *Controller) PageSize() int { return c.pageSize }

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Mount runs Load the first time it is called and does nothing afterwards.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.mounted = true
	c.mu.Unlock()
	return c.Load(ctx)
}

// Load replaces the post list with the upstream's.
func (c *Controller) Load(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "controller.Load")
	defer span.End()

	posts, err := c.api.ListPosts(ctx)
	if err != nil {
		return c.fail(span, "load_posts_failed", "Error fetching posts", err, nil)
	}

	c.mu.Lock()
	c.state.Posts = posts
	c.state.LastError = ""
	c.mu.Unlock()
	return nil
}

// View fetches a post and its comments concurrently and selects it once both
// calls succeed. On failure the previous selection is kept.
func (c *Controller) View(ctx context.Context, id int) error {
	ctx, span := c.tracer.Start(ctx, "controller.View", trace.WithAttributes(attribute.Int("post.id", id)))
	defer span.End()

	var (
		post     model.Post
		comments []model.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = c.api.GetPost(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = c.api.ListComments(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail(span, "view_post_failed", fmt.Sprintf("Error fetching details for post %d", id), err, logging.Fields{"post_id": id})
	}

	own := comments[:0:0]
	for _, cm := range comments {
		if cm.PostID == id {
			own = append(own, cm)
		}
	}

	c.mu.Lock()
	c.state.Selected = &post
	c.state.Comments = own
	c.state.LastError = ""
	c.state.Notice = ""
	c.mu.Unlock()
	return nil
}

// Update sends the demo patch for id and folds the response into the list
// and the selection.
func (c *Controller) Update(ctx context.Context, id int) error {
	ctx, span := c.tracer.Start(ctx, "controller.Update", trace.WithAttributes(attribute.Int("post.id", id)))
	defer span.End()

	updated, err := c.api.UpdatePost(ctx, id, c.payloads.Update)
	if err != nil {
		return c.fail(span, "update_post_failed", fmt.Sprintf("Error updating post %d", id), err, logging.Fields{"post_id": id})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	title := updated.Title
	for i, p := range c.state.Posts {
		if p.ID == id {
			c.state.Posts[i] = p.Merge(updated)
			title = c.state.Posts[i].Title
		}
	}
	if sel := c.state.Selected; sel != nil && sel.ID == id {
		merged := sel.Merge(updated)
		c.state.Selected = &merged
	}
	c.state.LastError = ""
	c.state.Notice = fmt.Sprintf("Post %d updated with title: %s", id, title)
	return nil
}

// Delete removes id upstream and, once the server acknowledges it, from the
// list. A rejected delete leaves the list untouched.
func (c *Controller) Delete(ctx context.Context, id int) error {
	ctx, span := c.tracer.Start(ctx, "controller.Delete", trace.WithAttributes(attribute.Int("post.id", id)))
	defer span.End()

	ok, err := c.api.DeletePost(ctx, id)
	if err == nil && !ok {
		err = ErrDeleteRejected
	}
	if err != nil {
		return c.fail(span, "delete_post_failed", fmt.Sprintf("Error deleting post %d", id), err, logging.Fields{"post_id": id})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.state.Posts[:0:0]
	for _, p := range c.state.Posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.state.Posts = kept
	if sel := c.state.Selected; sel != nil && sel.ID == id {
		c.state.Selected = nil
		c.state.Comments = nil
	}
	c.state.LastError = ""
	c.state.Notice = fmt.Sprintf("Post %d deleted", id)
	return nil
}

// Create submits the demo draft and puts the created post at the top of the list.
func (c *Controller) Create(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "controller.Create")
	defer span.End()

	created, err := c.api.CreatePost(ctx, c.payloads.Create)
	if err != nil {
		return c.fail(span, "create_post_failed", "Error creating new post", err, nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Posts = append([]model.Post{created}, c.state.Posts...)
	c.state.LastError = ""
	c.state.Notice = fmt.Sprintf("Post created with ID: %d", created.ID)
	return nil
}

// fail records message as the page error and returns err unchanged.
func (c *Controller) fail(span trace.Span, event, message string, err error, f logging.Fields) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, message)

	if f == nil {
		f = logging.Fields{}
	}
	f["error"] = err.Error()
	c.log.Error(event, f)

	c.mu.Lock()
	c.state.LastError = message
	c.state.Notice = ""
	c.mu.Unlock()
	return err
}
