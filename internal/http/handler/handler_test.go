package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/client"
	"postboard/internal/client/fixture"
	"postboard/internal/controller"
	"postboard/internal/http/middleware"
	"postboard/internal/logging"
	"postboard/internal/model"
)

func newTestApp(t *testing.T, up *fixture.Upstream) (*fiber.App, *controller.Controller) {
	t.Helper()
	srv := fixture.NewServer(t, up)
	api, err := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctl := controller.New(api, controller.WithLogger(logging.New(io.Discard, nil)))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, ctl)
	return app, ctl
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func postIDs(st controller.State) []int {
	var out []int
	for _, p := range st.Posts {
		out = append(out, p.ID)
	}
	return out
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPage(t *testing.T) {
	up := fixture.Default()
	for i := 4; i <= 7; i++ {
		up.Posts = append(up.Posts, model.Post{ID: i, UserID: 2, Title: "post " + strconv.Itoa(i), Body: "b"})
	}
	up.Posts[0].Title = "<script>alert(1)</script>"
	app, _ := newTestApp(t, up)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body := readBody(t, resp)
	assert.Contains(t, body, "post 5")
	assert.NotContains(t, body, "post 6", "only the first page of posts is shown")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, `action="/posts/2/delete"`)
	assert.NotContains(t, body, "Post Details")
}

func TestPage_UpstreamDown(t *testing.T) {
	api, err := client.New("http://127.0.0.1:1")
	require.NoError(t, err)
	ctl := controller.New(api, controller.WithLogger(logging.New(io.Discard, nil)))
	app := fiber.New()
	app.Get("/", Page(ctl))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Error fetching posts")
}

func TestViewPost(t *testing.T) {
	app, ctl := newTestApp(t, fixture.Default())

	t.Run("redirects back to the page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/2/view", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

		st := ctl.State()
		require.NotNil(t, st.Selected)
		assert.Equal(t, 2, st.Selected.ID)
		assert.Len(t, st.Comments, 2)
	})

	t.Run("detail panel is rendered", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Contains(t, body, "Post Details")
		assert.Contains(t, body, "c3@example.com:")
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/"+id+"/view", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)

			var body errorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "INVALID_ID", body.Error.Code)
			assert.NotEmpty(t, body.RequestID)
		}
	})

	t.Run("json caller gets upstream error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts/42/view", nil)
		req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "UPSTREAM_ERROR", body.Error.Code)
		assert.Equal(t, "Error fetching details for post 42", body.Error.Message)

		st := ctl.State()
		require.NotNil(t, st.Selected)
		assert.Equal(t, 2, st.Selected.ID)
	})
}

func TestCreateUpdateDelete(t *testing.T) {
	app, ctl := newTestApp(t, fixture.Default())
	jsonPost := func(path string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := jsonPost("/reload")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{1, 2, 3}, postIDs(ctl.State()))

	resp = jsonPost("/posts")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st controller.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, []int{4, 1, 2, 3}, postIDs(st))
	assert.Equal(t, "Post created with ID: 4", st.Notice)

	resp = jsonPost("/posts/1/update")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = ctl.State()
	assert.Equal(t, "Updated Title!", st.Posts[1].Title)
	assert.Equal(t, "body of post 1", st.Posts[1].Body)

	resp = jsonPost("/posts/2/delete")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{4, 1, 3}, postIDs(ctl.State()))

	resp = jsonPost("/posts/99/delete")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, []int{4, 1, 3}, postIDs(ctl.State()))
}

func TestGetState(t *testing.T) {
	app, ctl := newTestApp(t, fixture.Default())
	_ = ctl.Mount(t.Context())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/state", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.True(t, strings.HasPrefix(body, `{"posts":[`))
	assert.NotContains(t, body, "selected")
}

func TestErrorHandler(t *testing.T) {
	app, _ := newTestApp(t, fixture.Default())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}
