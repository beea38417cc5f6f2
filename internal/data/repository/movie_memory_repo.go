package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"movie-records/internal/data/entity"

	"go.uber.org/zap"
)

type memoryMovieRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]entity.Movie
	log    *zap.Logger
}

// NewMemoryMovieRepository returns a MovieRepository that keeps records in
// process memory. Ids start at 1 and are never reused.
func NewMemoryMovieRepository(log *zap.Logger) MovieRepository {
	return &memoryMovieRepository{
		nextID: 1,
		items:  make(map[int64]entity.Movie),
		log:    log.With(zap.String("repository", "movie_memory")),
	}
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	movie.ID = r.nextID
	movie.CreatedAt = now
	movie.UpdatedAt = now

	r.nextID++
	r.items[movie.ID] = *movie
	r.order = append(r.order, movie.ID)

	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.order))
	for _, id := range r.order {
		movie := r.items[id]
		movies = append(movies, &movie)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *memoryMovieRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[movie.ID]
	if !ok {
		return ErrNotFound
	}

	stored.Title = movie.Title
	stored.Genre = movie.Genre
	stored.Year = movie.Year
	stored.UpdatedAt = time.Now().UTC()
	r.items[movie.ID] = stored

	*movie = stored
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}

	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *memoryMovieRepository) Ping(ctx context.Context) error {
	return nil
}
