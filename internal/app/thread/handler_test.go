package thread

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"circle-backend/internal/apperr"
	"circle-backend/internal/middleware"
	"circle-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

// fakeService lets handler tests script the outcome and observe the viewer the
// handler passed down.
type fakeService struct {
	feed       []FeedItem
	feedErr    error
	lastViewer uint64
}

func (s *fakeService) GetFeed(ctx context.Context, viewerID uint64) ([]FeedItem, error) {
	s.lastViewer = viewerID
	return s.feed, s.feedErr
}

func (s *fakeService) GetThread(ctx context.Context, id, viewerID uint64) (*ThreadDetail, error) {
	s.lastViewer = viewerID
	if id == 1 {
		return &ThreadDetail{ThreadView: ThreadView{ID: 1}}, nil
	}
	return nil, fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
}

func (s *fakeService) GetAuthorThreads(ctx context.Context, authorID uint64) ([]AuthorThreadItem, error) {
	if authorID == 1 {
		return []AuthorThreadItem{{ID: 1, AuthorID: 1}}, nil
	}
	return nil, fmt.Errorf("requested user does not have any threads: %w", apperr.ErrEmptyResult)
}

func (s *fakeService) CreateThread(ctx context.Context, authorID uint64, req CreateThreadRequest) (*ThreadRecord, error) {
	s.lastViewer = authorID
	return &ThreadRecord{ID: 10, Content: req.Content, AuthorID: authorID}, nil
}

func (s *fakeService) DeleteThread(ctx context.Context, id uint64) (*ThreadRecord, error) {
	if id == 1 {
		return &ThreadRecord{ID: 1}, nil
	}
	return nil, fmt.Errorf("requested thread does not exist: %w", apperr.ErrNotFound)
}

func (s *fakeService) InvalidateFeed(ctx context.Context) {}

func threadRouter(svc Service) *gin.Engine {
	r := gin.New()
	authed := r.Group("/api")
	authed.Use(middleware.ViewerMiddleware())
	RegisterRoutes(authed, NewHandler(svc))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Viewer-ID", "7")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestThreadHandlers(t *testing.T) {
	t.Run("feed success", func(t *testing.T) {
		svc := &fakeService{feed: []FeedItem{{ThreadView: ThreadView{ID: 1}, IsLiked: true}}}
		r := threadRouter(svc)

		w, envelope := doJSON(t, r, http.MethodGet, "/api/threads", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, envelope.Error)
		assert.Equal(t, "Threads retrieved!", envelope.Message)
		assert.NotNil(t, envelope.Data)
		assert.Equal(t, uint64(7), svc.lastViewer)
	})

	t.Run("feed requires a viewer", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodGet, "/api/threads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store outage maps to 503", func(t *testing.T) {
		svc := &fakeService{feedErr: fmt.Errorf("failed to get threads: %w", apperr.ErrUnavailable)}
		r := threadRouter(svc)

		w, envelope := doJSON(t, r, http.MethodGet, "/api/threads", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.True(t, envelope.Error)
	})

	t.Run("thread detail success and not found", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		w, envelope := doJSON(t, r, http.MethodGet, "/api/threads/thread/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thread retrieved!", envelope.Message)

		w, envelope = doJSON(t, r, http.MethodGet, "/api/threads/thread/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, envelope.Error)
		assert.Contains(t, envelope.Message, "does not exist")
	})

	t.Run("non-numeric thread id is a bad request", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		w, envelope := doJSON(t, r, http.MethodGet, "/api/threads/thread/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, envelope.Error)
	})

	t.Run("author with no threads maps to 404", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		w, envelope := doJSON(t, r, http.MethodGet, "/api/threads/user/2", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, envelope.Error)
		assert.Contains(t, envelope.Message, "does not have any threads")
	})

	t.Run("post thread", func(t *testing.T) {
		svc := &fakeService{}
		r := threadRouter(svc)

		w, envelope := doJSON(t, r, http.MethodPost, "/api/threads", `{"content":"hello"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thread posted!", envelope.Message)
		assert.Equal(t, uint64(7), svc.lastViewer)
	})

	t.Run("post thread with blank content is a bad request", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		w, envelope := doJSON(t, r, http.MethodPost, "/api/threads", `{"content":"   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, envelope.Error)
	})

	t.Run("delete thread", func(t *testing.T) {
		r := threadRouter(&fakeService{})

		w, envelope := doJSON(t, r, http.MethodDelete, "/api/threads/thread/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thread deleted!", envelope.Message)
	})
}
