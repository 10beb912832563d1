package store

import (
	"context"
	"sort"
	"sync"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/models"
)

// memoryMovieRepository is the map-backed implementation of
// [MovieRepository]. Access is guarded by an RWMutex because the record set
// is the only state shared between concurrent requests.
type memoryMovieRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	movies map[int64]models.Movie
	nextID int64
}

// NewMemoryMovieRepository constructs a [MovieRepository] holding the given
// seed records. IDs assigned to later inserts continue after the highest
// seeded id.
func NewMemoryMovieRepository(logger *logger.Logger, seed ...models.Movie) MovieRepository {
	logger.Debug().Int("seed", len(seed)).Msg("creating in-memory movie repository")

	r := &memoryMovieRepository{
		logger: logger,
		movies: make(map[int64]models.Movie, len(seed)),
		nextID: 1,
	}
	for _, movie := range seed {
		r.movies[movie.MovieID] = movie
		if movie.MovieID >= r.nextID {
			r.nextID = movie.MovieID + 1
		}
	}

	return r
}

func (r *memoryMovieRepository) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]models.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		movies = append(movies, movie)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].MovieID < movies[j].MovieID })

	return movies, nil
}

func (r *memoryMovieRepository) GetMovieByID(ctx context.Context, id int64) (models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return models.Movie{}, ErrMovieNotFound
	}

	return movie, nil
}

func (r *memoryMovieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.MovieID = r.nextID
	r.nextID++
	r.movies[movie.MovieID] = movie

	return movie, nil
}

func (r *memoryMovieRepository) UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.MovieID]; !ok {
		return models.Movie{}, ErrMovieNotFound
	}
	r.movies[movie.MovieID] = movie

	return movie, nil
}

func (r *memoryMovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return ErrMovieNotFound
	}
	delete(r.movies, id)

	return nil
}
