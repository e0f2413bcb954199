// Package fixture serves a static, in-memory posts API for tests.
//
// It mimics the upstream's observable behavior: writes are echoed back but
// never stored, create always answers 201 with the next free id, and update
// echoes only the fields it received.
package fixture

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"postboard/internal/model"
)

// Upstream is a static posts API.
type Upstream struct {
	Posts    []model.Post
	Comments []model.Comment
}

// Default returns three posts with ids 1, 2, 3 and two comments on each.
func Default() *Upstream {
	u := &Upstream{}
	for i := 1; i <= 3; i++ {
		u.Posts = append(u.Posts, model.Post{
			ID:     i,
			UserID: 1,
			Title:  "post " + strconv.Itoa(i),
			Body:   "body of post " + strconv.Itoa(i),
		})
		for j := 0; j < 2; j++ {
			id := (i-1)*2 + j + 1
			u.Comments = append(u.Comments, model.Comment{
				ID:     id,
				PostID: i,
				Name:   "commenter " + strconv.Itoa(id),
				Email:  "c" + strconv.Itoa(id) + "@example.com",
				Body:   "comment " + strconv.Itoa(id),
			})
		}
	}
	return u
}

// NewServer starts u on a test server that is closed with the test.
func NewServer(t testing.TB, u *Upstream) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(u.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// Handler routes the posts endpoints.
func (u *Upstream) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, u.Posts)
	})
	mux.HandleFunc("GET /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		p, ok := u.find(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{})
			return
		}
		writeJSON(w, http.StatusOK, p)
	})
	mux.HandleFunc("GET /posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		out := []model.Comment{}
		for _, c := range u.Comments {
			if c.PostID == id {
				out = append(out, c)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		var d model.PostDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{})
			return
		}
		writeJSON(w, http.StatusCreated, model.Post{
			ID:     u.nextID(),
			UserID: d.UserID,
			Title:  d.Title,
			Body:   d.Body,
		})
	})
	mux.HandleFunc("PUT /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		p, ok := u.find(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{})
			return
		}
		echo := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&echo); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{})
			return
		}
		echo["id"] = p.ID
		writeJSON(w, http.StatusOK, echo)
	})
	mux.HandleFunc("DELETE /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := u.find(r); !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	return mux
}

func (u *Upstream) find(r *http.Request) (model.Post, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return model.Post{}, false
	}
	for _, p := range u.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

func (u *Upstream) nextID() int {
	last := 0
	for _, p := range u.Posts {
		if p.ID > last {
			last = p.ID
		}
	}
	return last + 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
