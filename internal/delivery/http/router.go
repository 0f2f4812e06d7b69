package http

import (
	"net/http"
)

// NewRouter initializes the HTTP router with all application routes.
// Anything that matches no route falls through to the rendered 404 page.
func NewRouter(renderer *Renderer, venues *VenueController, artists *ArtistController, shows *ShowController) *http.ServeMux {
	mux := http.NewServeMux()

	// Landing page
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "home.html", nil)
	})

	// Venues
	mux.HandleFunc("GET /venues", venues.List)
	mux.HandleFunc("POST /venues/search", venues.Search)
	mux.HandleFunc("GET /venues/create", venues.CreateForm)
	mux.HandleFunc("POST /venues/create", venues.Create)
	mux.HandleFunc("GET /venues/{id}", venues.Show)
	mux.HandleFunc("DELETE /venues/{id}", venues.Delete)
	mux.HandleFunc("GET /venues/{id}/edit", venues.EditForm)
	mux.HandleFunc("POST /venues/{id}/edit", venues.Edit)

	// Artists
	mux.HandleFunc("GET /artists", artists.List)
	mux.HandleFunc("POST /artists/search", artists.Search)
	mux.HandleFunc("GET /artists/create", artists.CreateForm)
	mux.HandleFunc("POST /artists/create", artists.Create)
	mux.HandleFunc("GET /artists/{id}", artists.Show)
	mux.HandleFunc("GET /artists/{id}/edit", artists.EditForm)
	mux.HandleFunc("POST /artists/{id}/edit", artists.Edit)

	// Shows
	mux.HandleFunc("GET /shows", shows.List)
	mux.HandleFunc("GET /shows/create", shows.CreateForm)
	mux.HandleFunc("POST /shows/create", shows.Create)

	// Fallback
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderer.NotFound(w, r)
	})

	return mux
}
