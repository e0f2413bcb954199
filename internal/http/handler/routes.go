package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"postboard/internal/controller"
)

// RegisterRoutes attaches the page, its actions and the JSON state endpoint.
func RegisterRoutes(app *fiber.App, ctl *controller.Controller) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/", Page(ctl))
	app.Get("/api/state", GetState(ctl))

	app.Post("/reload", Reload(ctl))
	app.Post("/posts", CreatePost(ctl))
	app.Post("/posts/:id/view", ViewPost(ctl))
	app.Post("/posts/:id/update", UpdatePost(ctl))
	app.Post("/posts/:id/delete", DeletePost(ctl))
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Page renders the post list. The first request loads the list from upstream.
func Page(ctl *controller.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A failed mount is already reflected in the state's error banner.
		_ = ctl.Mount(c.UserContext())

		html, err := renderPage(ctl.State(), ctl.PageSize())
		if err != nil {
			return err
		}
		return c.Type("html").Send(html)
	}
}

// GetState godoc
// @Summary Current page state
// @Tags state
// @Produce json
// @Success 200 {object} controller.State
// @Router /api/state [get]
func GetState(ctl *controller.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ctl.State())
	}
}

// Reload godoc
// @Summary Reload the post list from upstream
// @Tags actions
// @Produce json
// @Success 303
// @Success 200 {object} controller.State
// @Failure 502 {object} errorPayload
// @Router /reload [post]
func Reload(ctl *controller.Controller) fiber.Handler {
	return action(ctl, func(ctx context.Context, _ int) error {
		return ctl.Load(ctx)
	}, false)
}

// CreatePost godoc
// @Summary Create the demo post and prepend it to the list
// @Tags actions
// @Produce json
// @Success 303
// @Success 200 {object} controller.State
// @Failure 502 {object} errorPayload
// @Router /posts [post]
func CreatePost(ctl *controller.Controller) fiber.Handler {
	return action(ctl, func(ctx context.Context, _ int) error {
		return ctl.Create(ctx)
	}, false)
}

// ViewPost godoc
// @Summary Select a post and load its comments
// @Tags actions
// @Produce json
// @Param id path int true "Post ID"
// @Success 303
// @Success 200 {object} controller.State
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /posts/{id}/view [post]
func ViewPost(ctl *controller.Controller) fiber.Handler {
	return action(ctl, ctl.View, true)
}

// UpdatePost godoc
// @Summary Apply the demo update to a post
// @Tags actions
// @Produce json
// @Param id path int true "Post ID"
// @Success 303
// @Success 200 {object} controller.State
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /posts/{id}/update [post]
func UpdatePost(ctl *controller.Controller) fiber.Handler {
	return action(ctl, ctl.Update, true)
}

// DeletePost godoc
// @Summary Delete a post and drop it from the list
// @Tags actions
// @Produce json
// @Param id path int true "Post ID"
// @Success 303
// @Success 200 {object} controller.State
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /posts/{id}/delete [post]
func DeletePost(ctl *controller.Controller) fiber.Handler {
	return action(ctl, ctl.Delete, true)
}

// action runs fn and answers with a redirect back to the page, or with the
// resulting state when the caller asked for JSON.
func action(ctl *controller.Controller, fn func(context.Context, int) error, needsID bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id int
		if needsID {
			v, err := c.ParamsInt("id")
			if err != nil || v <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
			}
			id = v
		}

		err := fn(c.UserContext(), id)

		if !wantsJSON(c) {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		st := ctl.State()
		if err != nil {
			return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", st.LastError)
		}
		return c.JSON(st)
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Get(fiber.HeaderAccept) == fiber.MIMEApplicationJSON
}
