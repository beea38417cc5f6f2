package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-records/internal/data/entity"
	"movie-records/internal/data/repository"
	"movie-records/internal/dto/request"
	"movie-records/internal/dto/response"
	"movie-records/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	// UpdateMovie replaces every field of the movie. A nil req means the
	// body could not be decoded; it is reported only once the id resolves.
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
	Ping(ctx context.Context) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := s.validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie := &entity.Movie{
		Title: req.Title,
		Genre: req.Genre,
		Year:  string(req.Year),
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(req); err != nil {
		s.log.Warn("Update movie validation failed",
			zap.Int64("movie_id", movie.ID),
			zap.Error(err),
		)
		return nil, err
	}

	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.Year = string(req.Year)

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// deleted between lookup and update
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Debug("Invalid movie ID format", zap.String("movie_id", movieID))
		return ErrMovieNotFound
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))

	return nil
}

func (s *movieService) Ping(ctx context.Context) error {
	return s.repo.Movie.Ping(ctx)
}

// findMovie resolves a raw path id to a stored movie or ErrMovieNotFound
func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Debug("Invalid movie ID format", zap.String("movie_id", movieID))
		return nil, ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *movieService) validate(req *request.MovieRequest) error {
	if req == nil {
		return &ValidationError{Message: "Invalid request body"}
	}

	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Message: "Validation failed", Fields: errs}
	}

	return nil
}
