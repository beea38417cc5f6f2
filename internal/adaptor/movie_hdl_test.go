package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-records/internal/dto/request"
	"movie-records/internal/dto/response"
	"movie-records/internal/usecase"
	"movie-records/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMovieService struct {
	usecase.MovieService
	ListMoviesFunc  func(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieFunc    func(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovieFunc func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovieFunc func(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovieFunc func(ctx context.Context, movieID string) error
	PingFunc        func(ctx context.Context) error
}

func (m *mockMovieService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	return m.ListMoviesFunc(ctx)
}

func (m *mockMovieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	return m.GetMovieFunc(ctx, movieID)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	return m.CreateMovieFunc(ctx, req)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	return m.UpdateMovieFunc(ctx, movieID, req)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, movieID string) error {
	return m.DeleteMovieFunc(ctx, movieID)
}

func (m *mockMovieService) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

func newTestRouter(svc usecase.MovieService) http.Handler {
	h := NewMovieHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/movies", h.GetMovies)
	r.Post("/movies", h.CreateMovie)
	r.Get("/movies/{id}", h.GetMovieByID)
	r.Put("/movies/{id}", h.UpdateMovie)
	r.Delete("/movies/{id}", h.DeleteMovie)
	return r
}

func serve(h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, url, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestMovieHandlerErrorMapping(t *testing.T) {
	storageErr := errors.New("connection refused")
	validationErr := &usecase.ValidationError{
		Message: "Validation failed",
		Fields:  map[string]string{"genre": "This field is required"},
	}

	svc := &mockMovieService{
		ListMoviesFunc: func(ctx context.Context) ([]response.MovieResponse, error) {
			return nil, storageErr
		},
		GetMovieFunc: func(ctx context.Context, movieID string) (*response.MovieResponse, error) {
			return nil, usecase.ErrMovieNotFound
		},
		CreateMovieFunc: func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
			return nil, validationErr
		},
		UpdateMovieFunc: func(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
			return nil, storageErr
		},
		DeleteMovieFunc: func(ctx context.Context, movieID string) error {
			return usecase.ErrMovieNotFound
		},
	}
	router := newTestRouter(svc)

	tests := []struct {
		name        string
		method      string
		url         string
		body        string
		wantStatus  int
		wantMessage string
		wantErrors  map[string]string
	}{
		{name: "list storage error", method: http.MethodGet, url: "/movies", wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
		{name: "get not found", method: http.MethodGet, url: "/movies/7", wantStatus: http.StatusNotFound, wantMessage: "Movie not found"},
		{
			name:        "create validation error",
			method:      http.MethodPost,
			url:         "/movies",
			body:        `{"title":"Heat","year":"1995"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantErrors:  map[string]string{"genre": "This field is required"},
		},
		{name: "update storage error", method: http.MethodPut, url: "/movies/7", body: `{}`, wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
		{name: "delete not found", method: http.MethodDelete, url: "/movies/7", wantStatus: http.StatusNotFound, wantMessage: "Movie not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.url, tt.body)

			require.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Status  bool              `json:"status"`
				Message string            `json:"message"`
				Errors  map[string]string `json:"errors"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantErrors, body.Errors)
		})
	}
}

func TestUpdateMoviePassesNilOnUndecodableBody(t *testing.T) {
	var gotID string
	var gotReq *request.MovieRequest
	called := false

	svc := &mockMovieService{
		UpdateMovieFunc: func(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
			called = true
			gotID = movieID
			gotReq = req
			return nil, usecase.ErrMovieNotFound
		},
	}

	w := serve(newTestRouter(svc), http.MethodPut, "/movies/42", `{"title":`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.True(t, called)
	assert.Equal(t, "42", gotID)
	assert.Nil(t, gotReq)
}

func TestCreateMovieRejectsBadBodyWithoutCallingService(t *testing.T) {
	svc := &mockMovieService{
		CreateMovieFunc: func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	w := serve(newTestRouter(svc), http.MethodPost, "/movies", `{"year": true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestHealth(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		h := NewHealthHandler(&mockMovieService{PingFunc: func(ctx context.Context) error { return nil }}, zap.NewNop())

		w := httptest.NewRecorder()
		h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		h := NewHealthHandler(&mockMovieService{PingFunc: func(ctx context.Context) error {
			return errors.New("dial tcp: connection refused")
		}}, zap.NewNop())

		w := httptest.NewRecorder()
		h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})
}
