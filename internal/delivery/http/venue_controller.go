package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gigbook/internal/domain"
)

// VenueForm is the typed input of the venue create and edit forms.
type VenueForm struct {
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	ImageLink    string
	FacebookLink string
	Genres       []string
}

func venueFormFromRequest(r *http.Request) VenueForm {
	_ = r.ParseForm()
	return VenueForm{
		Name:         r.PostFormValue("name"),
		City:         r.PostFormValue("city"),
		State:        r.PostFormValue("state"),
		Address:      r.PostFormValue("address"),
		Phone:        r.PostFormValue("phone"),
		ImageLink:    r.PostFormValue("image_link"),
		FacebookLink: r.PostFormValue("facebook_link"),
		Genres:       r.PostForm["genres"],
	}
}

// Validate implements Validator. Creation requires a name; every other
// field is freeform.
func (f VenueForm) Validate() []string {
	var errs []string
	if f.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// apply overwrites every mutable field of v with the submitted values.
// Fields may be blanked.
func (f VenueForm) apply(v *domain.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Genres = strings.Join(f.Genres, ",")
}

type VenueController struct {
	Logger   *slog.Logger
	Service  domain.VenueService
	Renderer *Renderer
	Flash    *FlashCodec
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService, renderer *Renderer, flash *FlashCodec) *VenueController {
	return &VenueController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		Flash:    flash,
	}
}

// List renders the venue directory grouped by city.
func (c *VenueController) List(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.ListVenues(r.Context())
	if err != nil {
		c.Logger.Error("list venues", "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "venues.html", groups)
}

// venueSearchPage feeds the search results template.
type venueSearchPage struct {
	Results    *domain.VenueSearchResults
	SearchTerm string
}

// Search matches venue names against the submitted search_term. An empty
// term matches everything.
func (c *VenueController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	results, err := c.Service.SearchVenues(r.Context(), term)
	if err != nil {
		c.Logger.Error("search venues", "term", term, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "search_venues.html", venueSearchPage{Results: results, SearchTerm: term})
}

// Show renders the venue detail page or the 404 page.
func (c *VenueController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	page, err := c.Service.GetVenuePage(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get venue page", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "show_venue.html", page)
}

// CreateForm renders the empty venue form.
func (c *VenueController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, r, http.StatusOK, "new_venue.html", formPage{GenreChoices: genreChoices})
}

// Create persists a new venue. Win or lose, the landing page is rendered
// with a status message; there is no redirect to the new record.
func (c *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	f := venueFormFromRequest(r)
	if errs := f.Validate(); len(errs) > 0 {
		c.Renderer.Render(w, r, http.StatusOK, "new_venue.html", formPage{GenreChoices: genreChoices},
			ErrorFlash(strings.Join(errs, "; ")))
		return
	}
	venue := &domain.Venue{}
	f.apply(venue)
	if err := c.Service.CreateVenue(r.Context(), venue); err != nil {
		c.Logger.Error("create venue", "name", f.Name, "error", err)
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			ErrorFlash("An error occurred. Venue "+f.Name+" could not be listed."))
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
		SuccessFlash("Venue "+f.Name+" was successfully listed!"))
}

// editVenuePage feeds the edit form template.
type editVenuePage struct {
	Venue        *domain.Venue
	Genres       []string
	GenreChoices []string
}

// EditForm renders the edit form pre-populated from the stored record.
func (c *VenueController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get venue", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "edit_venue.html", editVenuePage{
		Venue:        venue,
		Genres:       venue.GenreList(),
		GenreChoices: genreChoices,
	})
}

// Edit overwrites all mutable fields with the submitted values and
// redirects to the detail page. Any field can be blanked.
func (c *VenueController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("get venue", "id", id, "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	oldName := venue.Name
	venueFormFromRequest(r).apply(venue)
	if err := c.Service.UpdateVenue(r.Context(), venue); err != nil {
		c.Logger.Error("update venue", "id", id, "error", err)
		c.Flash.Flash(w, ErrorFlash("An error occurred. Venue "+oldName+" could not be updated!"))
	} else {
		c.Flash.Flash(w, SuccessFlash("Venue "+oldName+" was successfully updated!"))
	}
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusFound)
}

// Delete removes a venue. A bare 204 is written; the status message rides
// the flash cookie to the next page load.
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		c.Renderer.NotFound(w, r)
		return
	}
	name, err := c.Service.DeleteVenue(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Renderer.NotFound(w, r)
			return
		}
		c.Logger.Error("delete venue", "id", id, "error", err)
		c.Flash.Flash(w, ErrorFlash("An error occurred. Venue "+name+" could not be deleted!"))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	c.Flash.Flash(w, SuccessFlash("Venue "+name+" was successfully deleted!"))
	w.WriteHeader(http.StatusNoContent)
}
