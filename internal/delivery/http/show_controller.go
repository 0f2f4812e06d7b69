package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gigbook/internal/domain"
)

// showTimeLayout is the fixed submission format for show start times.
const showTimeLayout = "2006-01-02 15:04:05"

// ShowForm is the typed input of the show creation form.
type ShowForm struct {
	VenueID   string
	ArtistID  string
	StartTime string
}

func showFormFromRequest(r *http.Request) ShowForm {
	_ = r.ParseForm()
	return ShowForm{
		VenueID:   r.PostFormValue("venue_id"),
		ArtistID:  r.PostFormValue("artist_id"),
		StartTime: r.PostFormValue("start_time"),
	}
}

// Validate implements Validator. A malformed start time is a validation
// failure here rather than a fault further down.
func (f ShowForm) Validate() []string {
	var errs []string
	if _, err := strconv.ParseInt(f.VenueID, 10, 64); err != nil {
		errs = append(errs, "venue_id must be a number")
	}
	if _, err := strconv.ParseInt(f.ArtistID, 10, 64); err != nil {
		errs = append(errs, "artist_id must be a number")
	}
	if _, err := time.Parse(showTimeLayout, f.StartTime); err != nil {
		errs = append(errs, "start_time must match YYYY-MM-DD HH:MM:SS")
	}
	return errs
}

// show builds the domain record from a validated form.
func (f ShowForm) show() *domain.Show {
	venueID, _ := strconv.ParseInt(f.VenueID, 10, 64)
	artistID, _ := strconv.ParseInt(f.ArtistID, 10, 64)
	startTime, _ := time.Parse(showTimeLayout, f.StartTime)
	return &domain.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}
}

type ShowController struct {
	Logger   *slog.Logger
	Service  domain.ShowService
	Renderer *Renderer
	Flash    *FlashCodec
}

func NewShowController(logger *slog.Logger, svc domain.ShowService, renderer *Renderer, flash *FlashCodec) *ShowController {
	return &ShowController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		Flash:    flash,
	}
}

// List renders every show ordered by start time.
func (c *ShowController) List(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Service.ListShows(r.Context())
	if err != nil {
		c.Logger.Error("list shows", "error", err)
		c.Renderer.ServerError(w, r)
		return
	}
	c.Renderer.Render(w, r, http.StatusOK, "shows.html", shows)
}

// CreateForm renders the empty show form.
func (c *ShowController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, r, http.StatusOK, "new_show.html", nil)
}

// Create inserts a show after the referential pre-checks. Every outcome
// lands back on the landing page with a status message, except validation
// failures which re-render the form.
func (c *ShowController) Create(w http.ResponseWriter, r *http.Request) {
	f := showFormFromRequest(r)
	if errs := f.Validate(); len(errs) > 0 {
		c.Renderer.Render(w, r, http.StatusOK, "new_show.html", nil,
			ErrorFlash(strings.Join(errs, "; ")))
		return
	}
	err := c.Service.CreateShow(r.Context(), f.show())
	switch {
	case errors.Is(err, domain.ErrVenueMissing):
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			ErrorFlash("Venue id does not exist!"))
	case errors.Is(err, domain.ErrArtistMissing):
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			ErrorFlash("Artist id does not exist!"))
	case err != nil:
		c.Logger.Error("create show", "venue_id", f.VenueID, "artist_id", f.ArtistID, "error", err)
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			ErrorFlash("An error occurred. Show could not be listed."))
	default:
		c.Renderer.Render(w, r, http.StatusOK, "home.html", nil,
			SuccessFlash("Show was successfully listed!"))
	}
}
