package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShowService implements domain.ShowService for controller tests.
type fakeShowService struct {
	listResult  []*domain.ShowListing
	listErr     error
	createErr   error
	lastCreated *domain.Show
}

func (f *fakeShowService) ListShows(_ context.Context) ([]*domain.ShowListing, error) {
	return f.listResult, f.listErr
}

func (f *fakeShowService) CreateShow(_ context.Context, s *domain.Show) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.lastCreated = s
	return nil
}

func newShowController(t *testing.T, svc domain.ShowService) *ShowController {
	t.Helper()
	renderer, flash := newTestRenderer(t)
	return NewShowController(testLogger, svc, renderer, flash)
}

func TestShowController_List(t *testing.T) {
	svc := &fakeShowService{listResult: []*domain.ShowListing{
		{
			VenueID:    1,
			VenueName:  "The Musical Hop",
			ArtistID:   4,
			ArtistName: "Guns N Petals",
			StartTime:  time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC),
		},
	}}
	ctrl := newShowController(t, svc)

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
	assert.Contains(t, rec.Body.String(), "2026-05-21 21:30:00")
}

func TestShowController_Create(t *testing.T) {
	values := url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"4"},
		"start_time": {"2026-05-21 21:30:00"},
	}

	t.Run("success renders landing page with message", func(t *testing.T) {
		svc := &fakeShowService{}
		ctrl := newShowController(t, svc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", values))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Show was successfully listed!")
		require.NotNil(t, svc.lastCreated)
		assert.Equal(t, int64(1), svc.lastCreated.VenueID)
		assert.Equal(t, int64(4), svc.lastCreated.ArtistID)
		assert.Equal(t, time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC), svc.lastCreated.StartTime)
	})

	t.Run("unknown venue flags the venue id", func(t *testing.T) {
		svc := &fakeShowService{createErr: domain.ErrVenueMissing}
		ctrl := newShowController(t, svc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", values))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Venue id does not exist!")
	})

	t.Run("unknown artist flags the artist id", func(t *testing.T) {
		svc := &fakeShowService{createErr: domain.ErrArtistMissing}
		ctrl := newShowController(t, svc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", values))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Artist id does not exist!")
	})

	t.Run("persistence failure renders landing page with error", func(t *testing.T) {
		svc := &fakeShowService{createErr: sql.ErrConnDone}
		ctrl := newShowController(t, svc)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", values))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "An error occurred. Show could not be listed.")
	})

	t.Run("malformed start time re-renders form", func(t *testing.T) {
		svc := &fakeShowService{}
		ctrl := newShowController(t, svc)

		bad := url.Values{
			"venue_id":   {"1"},
			"artist_id":  {"4"},
			"start_time": {"next tuesday"},
		}
		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", bad))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "start_time must match YYYY-MM-DD HH:MM:SS")
		require.Nil(t, svc.lastCreated)
	})

	t.Run("non-numeric ids re-render form", func(t *testing.T) {
		svc := &fakeShowService{}
		ctrl := newShowController(t, svc)

		bad := url.Values{
			"venue_id":   {"hop"},
			"artist_id":  {"4"},
			"start_time": {"2026-05-21 21:30:00"},
		}
		rec := httptest.NewRecorder()
		ctrl.Create(rec, formRequest(http.MethodPost, "/shows/create", bad))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "venue_id must be a number")
		require.Nil(t, svc.lastCreated)
	})
}
