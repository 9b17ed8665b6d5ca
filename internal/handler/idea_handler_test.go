package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agorahq/agora/internal/model"
	"github.com/agorahq/agora/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubForum implements service.ForumService with overridable behaviors.
type stubForum struct {
	authorCount  func(ctx context.Context) (int64, error)
	getAuthor    func(ctx context.Context, id uuid.UUID) (*model.Author, error)
	getAuthors   func(ctx context.Context, limit int) ([]*model.Author, error)
	addAuthor    func(ctx context.Context, username, fullname, email string) (uuid.UUID, error)
	editAuthor   func(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error)
	deleteAuthor func(ctx context.Context, id uuid.UUID) error

	ideaCount  func(ctx context.Context) (int64, error)
	getIdea    func(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	getIdeas   func(ctx context.Context, limit int) ([]*model.Idea, error)
	addIdea    func(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error)
	editIdea   func(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error)
	deleteIdea func(ctx context.Context, id uuid.UUID) error

	getCategories func(ctx context.Context) ([]*model.Category, error)
	getTags       func(ctx context.Context) ([]*model.Tag, error)
}

func (s *stubForum) AuthorCount(ctx context.Context) (int64, error) {
	if s.authorCount == nil {
		return 0, nil
	}
	return s.authorCount(ctx)
}

func (s *stubForum) GetAuthor(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.getAuthor(ctx, id)
}

func (s *stubForum) GetAuthors(ctx context.Context, limit int) ([]*model.Author, error) {
	return s.getAuthors(ctx, limit)
}

func (s *stubForum) AddAuthor(ctx context.Context, username, fullname, email string) (uuid.UUID, error) {
	return s.addAuthor(ctx, username, fullname, email)
}

func (s *stubForum) EditAuthor(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error) {
	return s.editAuthor(ctx, id, fields)
}

func (s *stubForum) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.deleteAuthor(ctx, id)
}

func (s *stubForum) IdeaCount(ctx context.Context) (int64, error) {
	if s.ideaCount == nil {
		return 0, nil
	}
	return s.ideaCount(ctx)
}

func (s *stubForum) GetIdea(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	return s.getIdea(ctx, id)
}

func (s *stubForum) GetIdeas(ctx context.Context, limit int) ([]*model.Idea, error) {
	return s.getIdeas(ctx, limit)
}

func (s *stubForum) AddIdea(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error) {
	return s.addIdea(ctx, title, body, authorID)
}

func (s *stubForum) EditIdea(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error) {
	return s.editIdea(ctx, id, fields)
}

func (s *stubForum) DeleteIdea(ctx context.Context, id uuid.UUID) error {
	return s.deleteIdea(ctx, id)
}

func (s *stubForum) GetCategories(ctx context.Context) ([]*model.Category, error) {
	if s.getCategories == nil {
		return nil, nil
	}
	return s.getCategories(ctx)
}

func (s *stubForum) GetTags(ctx context.Context) ([]*model.Tag, error) {
	if s.getTags == nil {
		return nil, nil
	}
	return s.getTags(ctx)
}

func ideaRouter(stub *stubForum) *gin.Engine {
	h := NewIdeaHandler(stub)
	router := gin.New()
	router.GET("/ideas", h.GetIdeas)
	router.GET("/ideas/:id", h.GetIdea)
	router.POST("/ideas", h.CreateIdea)
	router.PUT("/ideas/:id", h.UpdateIdea)
	router.DELETE("/ideas/:id", h.DeleteIdea)
	return router
}

func postForm(router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleIdea(title, body, username string) *model.Idea {
	return &model.Idea{
		ID:    uuid.New(),
		Title: title,
		Body:  body,
		Author: model.Author{
			Fullname:  username,
			CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGetIdeas(t *testing.T) {
	t.Run("returns the list shape and total count header", func(t *testing.T) {
		stub := &stubForum{
			getIdeas: func(ctx context.Context, limit int) ([]*model.Idea, error) {
				return []*model.Idea{
					sampleIdea("First Idea!", "This is my idea.", "mike cullerton"),
					sampleIdea("Another Idea!", "This is another idea.", "mike cullerton"),
				}, nil
			},
			ideaCount: func(ctx context.Context) (int64, error) { return 6, nil },
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "6", rec.Header().Get("X-Total-Count"))

		var items []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "First Idea!", items[0]["title"])
		assert.Equal(t, "This is my idea.", items[0]["idea"])
		assert.Equal(t, "mike cullerton, March 01, 2024", items[0]["author"])
	})

	t.Run("clamps missing and malformed limits to the default", func(t *testing.T) {
		for _, query := range []string{"", "?limit=abc", "?limit=-3"} {
			var gotLimit int
			stub := &stubForum{
				getIdeas: func(ctx context.Context, limit int) ([]*model.Idea, error) {
					gotLimit = limit
					return nil, nil
				},
			}

			rec := httptest.NewRecorder()
			ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas"+query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 5, gotLimit, "query %q", query)
		}
	})

	t.Run("passes an explicit limit through", func(t *testing.T) {
		var gotLimit int
		stub := &stubForum{
			getIdeas: func(ctx context.Context, limit int) ([]*model.Idea, error) {
				gotLimit = limit
				return nil, nil
			},
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas?limit=0", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, gotLimit)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestGetIdea(t *testing.T) {
	t.Run("returns title and body only", func(t *testing.T) {
		idea := sampleIdea("First Idea!", "This is my idea.", "mike cullerton")
		stub := &stubForum{
			getIdea: func(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
				assert.Equal(t, idea.ID, id)
				return idea, nil
			},
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas/"+idea.ID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]any{"title": "First Idea!", "idea": "This is my idea."}, body)
	})

	t.Run("404 for a missing idea", func(t *testing.T) {
		stub := &stubForum{
			getIdea: func(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
				return nil, apperror.ErrInvalidIdea
			},
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas/"+uuid.NewString(), nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("400 for a malformed id", func(t *testing.T) {
		stub := &stubForum{}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas/not-a-uuid", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateIdea(t *testing.T) {
	t.Run("201 with the new id", func(t *testing.T) {
		newID := uuid.New()
		authorID := uuid.New()
		stub := &stubForum{
			addIdea: func(ctx context.Context, title, body string, gotAuthor uuid.UUID) (uuid.UUID, error) {
				assert.Equal(t, "First Idea!", title)
				assert.Equal(t, "This is my idea.", body)
				assert.Equal(t, authorID, gotAuthor)
				return newID, nil
			},
		}

		form := url.Values{}
		form.Set("title", "First Idea!")
		form.Set("idea", "This is my idea.")
		form.Set("author_id", authorID.String())
		rec := postForm(ideaRouter(stub), http.MethodPost, "/ideas", form)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, newID.String(), body["new_idea_id"])
	})

	t.Run("400 when required fields are missing", func(t *testing.T) {
		stub := &stubForum{}

		form := url.Values{}
		form.Set("idea", "A body without a title.")
		rec := postForm(ideaRouter(stub), http.MethodPost, "/ideas", form)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 when creation fails", func(t *testing.T) {
		stub := &stubForum{
			addIdea: func(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error) {
				return uuid.Nil, apperror.ErrDuplicateIdea
			},
		}

		form := url.Values{}
		form.Set("title", "First Idea!")
		form.Set("author_id", uuid.NewString())
		rec := postForm(ideaRouter(stub), http.MethodPost, "/ideas", form)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("500 with a generic body when the store fails", func(t *testing.T) {
		stub := &stubForum{
			addIdea: func(ctx context.Context, title, body string, authorID uuid.UUID) (uuid.UUID, error) {
				return uuid.Nil, errors.New("pq: connection refused (SQLSTATE 08006)")
			},
		}

		form := url.Values{}
		form.Set("title", "First Idea!")
		form.Set("author_id", uuid.NewString())
		rec := postForm(ideaRouter(stub), http.MethodPost, "/ideas", form)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})
}

func TestUpdateIdea(t *testing.T) {
	t.Run("forwards the form fields", func(t *testing.T) {
		id := uuid.New()
		var gotFields map[string]string
		stub := &stubForum{
			editIdea: func(ctx context.Context, gotID uuid.UUID, fields map[string]string) (uuid.UUID, error) {
				assert.Equal(t, id, gotID)
				gotFields = fields
				return gotID, nil
			},
		}

		form := url.Values{}
		form.Set("title", "X")
		form.Set("visible", "true")
		rec := postForm(ideaRouter(stub), http.MethodPut, "/ideas/"+id.String(), form)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]string{"title": "X", "visible": "true"}, gotFields)
	})

	t.Run("404 for a missing idea", func(t *testing.T) {
		stub := &stubForum{
			editIdea: func(ctx context.Context, id uuid.UUID, fields map[string]string) (uuid.UUID, error) {
				return uuid.Nil, apperror.ErrInvalidIdea
			},
		}

		rec := postForm(ideaRouter(stub), http.MethodPut, "/ideas/"+uuid.NewString(), url.Values{})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteIdeaRoute(t *testing.T) {
	t.Run("202 on success", func(t *testing.T) {
		stub := &stubForum{
			deleteIdea: func(ctx context.Context, id uuid.UUID) error { return nil },
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ideas/"+uuid.NewString(), nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("404 for a missing idea", func(t *testing.T) {
		stub := &stubForum{
			deleteIdea: func(ctx context.Context, id uuid.UUID) error { return apperror.ErrInvalidIdea },
		}

		rec := httptest.NewRecorder()
		ideaRouter(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ideas/"+uuid.NewString(), nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
