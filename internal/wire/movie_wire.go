package wire

import (
	"movie-records/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)          // GET /api/movies/
		r.Post("/", movieHandler.CreateMovie)       // POST /api/movies/
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /api/movies/{id}/
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /api/movies/{id}/
		r.Patch("/{id}", movieHandler.UpdateMovie)  // PATCH /api/movies/{id}/, full replace like PUT
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/movies/{id}/
	})
}
