package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gigbook/internal/domain"
)

// ArtistForm is the typed input of the artist create and edit forms.
// Artists carry no street address; everything else mirrors VenueForm.
type ArtistForm struct {
	Name         string
	City         string
	State        string
	Phone        string
	ImageLink    string
	FacebookLink string
	Genres       []string
}

func artistFormFromRequest(r *http.Request) ArtistForm {
	_ = r.ParseForm()
	return ArtistForm{
		Name:         r.PostFormValue("name"),
		City:         r.PostFormValue("city"),
		State:        r.PostFormValue("state"),
		Phone:        r.PostFormValue("phone"),
		ImageLink:    r.PostFormValue("image_link"),
		FacebookLink: r.PostFormValue("facebook_link"),
		Genres:       r.PostForm["genres"],
	}
}

// Validate implements Validator.
func (f ArtistForm) Validate() []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

func (f ArtistForm) apply(a *domain.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Genres = strings.Join(f.Genres, ",")
}

type ArtistController struct {
	Logger   *slog.Logger
	Service  domain.ArtistService
	Renderer *Renderer
	Flash    *FlashCodec
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService, renderer *Renderer, flash *FlashCodec) *ArtistController {
	return &ArtistController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		Flash:    flash,
	}
}

// List renders the artist directory. Names only; upcoming-show counts are
// computed for search results, not the directory.
func (c *ArtistController) List(w http.ResponseWriter, r *http.Request) {
	artists, err := c.Service.ListArtists(r.Context())
	if err != nil {
		c.Logger.Error("list artists", "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "artists.html", artists)
}

type artistSearchPage struct {
	Results    *domain.ArtistSearchResults
	SearchTerm string
}

func (c *ArtistController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	results, err := c.Service.SearchArtists(r.Context(), term)
	if err != nil {
		c.Logger.Error("search artists", "term", term, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "search_artists.html", artistSearchPage{Results: results, SearchTerm: term})
}

func (c *ArtistController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	page, err := c.Service.GetArtistPage(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get artist page", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "show_artist.html", page)
}

func (c *ArtistController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, r, http.StatusOK, "new_artist.html", formPage{GenreChoices: genreChoices})
}

func (c *ArtistController) Create(w http.ResponseWriter, r *http.Request) {
	f := artistFormFromRequest(r)
	if errs := f.Validate(); len(errs) > 0 {
		c.Renderer.Render(w, r, http.StatusOK, "new_artist.html", formPage{GenreChoices: genreChoices},
			ErrorFlash(strings.Join(errs, "; ")))
		return
	}
	artist := &domain.Artist{}
	f.apply(artist)
	if err := c.Service.CreateArtist(r.Context(), artist); err != nil {
		c.Logger.Error("create artist", "name", f.Name, "error", err)
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			ErrorFlash("An error occurred. Artist "+f.Name+" could not be listed."))
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
		SuccessFlash("Artist "+f.Name+" was successfully listed!"))
}

type editArtistPage struct {
	Artist       *domain.Artist
	Genres       []string
	GenreChoices []string
}

func (c *ArtistController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	artist, err := c.Service.GetArtist(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get artist", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "edit_artist.html", editArtistPage{
		Artist:       artist,
		Genres:       artist.GenreList(),
		GenreChoices: genreChoices,
	})
}

func (c *ArtistController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	artist, err := c.Service.GetArtist(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get artist", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	oldName := artist.Name
	artistFormFromRequest(r).apply(artist)
	if err := c.Service.UpdateArtist(r.Context(), artist); err != nil {
		c.Logger.Error("update artist", "id", id, "error", err)
		c.Flash.Flash(w, ErrorFlash("An error occurred. Artist "+oldName+" could not be updated!"))
	} else {
		c.Flash.Flash(w, SuccessFlash("Artist "+oldName+" was successfully updated!"))
	}
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusFound)
}
