package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-records/internal/dto/request"
	"movie-records/internal/usecase"
	"movie-records/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds create/update payloads
const maxBodyBytes = 1 << 20

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies/
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /api/movies/{id}/
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /api/movies/
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeMovieRequest(w, r)
	if err != nil {
		h.log.Debug("Invalid request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PUT /api/movies/{id}/
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	// an undecodable body is passed on as nil so the id is still checked first
	req, err := h.decodeMovieRequest(w, r)
	if err != nil {
		h.log.Debug("Invalid request body", zap.Error(err))
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /api/movies/{id}/
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *MovieHandler) decodeMovieRequest(w http.ResponseWriter, r *http.Request) (*request.MovieRequest, error) {
	var req request.MovieRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("body must contain a single JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("body must contain a single JSON object")
	}

	return &req, nil
}

// handleServiceError maps service errors onto HTTP responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Debug(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.As(err, &validationErr):
		h.log.Debug(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		if len(validationErr.Fields) > 0 {
			utils.ResponseBadRequest(w, validationErr.Message, validationErr.Fields)
		} else {
			utils.ResponseBadRequest(w, validationErr.Message, nil)
		}

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
