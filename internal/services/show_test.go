package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestShowService_CreateShow(t *testing.T) {
	ctx := context.Background()
	startTime := fixedNow.Add(24 * time.Hour)

	existingVenue := map[int64]*domain.Venue{1: {ID: 1, Name: "A"}}
	existingArtist := map[int64]*domain.Artist{4: {ID: 4, Name: "B"}}

	tests := []struct {
		name       string
		show       *domain.Show
		venues     map[int64]*domain.Venue
		artists    map[int64]*domain.Artist
		createErr  error
		wantErr    error
		wantInsert bool
	}{
		{
			name:       "success",
			show:       &domain.Show{VenueID: 1, ArtistID: 4, StartTime: startTime},
			venues:     existingVenue,
			artists:    existingArtist,
			wantInsert: true,
		},
		{
			name:    "unknown venue skips insert",
			show:    &domain.Show{VenueID: 99, ArtistID: 4, StartTime: startTime},
			venues:  existingVenue,
			artists: existingArtist,
			wantErr: domain.ErrVenueMissing,
		},
		{
			name:    "unknown artist skips insert",
			show:    &domain.Show{VenueID: 1, ArtistID: 99, StartTime: startTime},
			venues:  existingVenue,
			artists: existingArtist,
			wantErr: domain.ErrArtistMissing,
		},
		{
			name:      "persistence failure surfaces",
			show:      &domain.Show{VenueID: 1, ArtistID: 4, StartTime: startTime},
			venues:    existingVenue,
			artists:   existingArtist,
			createErr: sql.ErrConnDone,
			wantErr:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			showRepo := &fakeShowRepo{createErr: tt.createErr}
			svc := NewShowService(showRepo,
				&fakeVenueRepo{byID: tt.venues},
				&fakeArtistRepo{byID: tt.artists},
				time.Second)

			err := svc.CreateShow(ctx, tt.show)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantInsert {
				require.Equal(t, tt.show, showRepo.created)
			} else {
				require.Nil(t, showRepo.created)
			}
		})
	}
}

func TestShowService_ListShows(t *testing.T) {
	ctx := context.Background()

	listings := []*domain.ShowListing{
		{VenueID: 1, VenueName: "A", ArtistID: 4, ArtistName: "B", StartTime: fixedNow.Add(-time.Hour)},
		{VenueID: 1, VenueName: "A", ArtistID: 5, ArtistName: "C", StartTime: fixedNow.Add(time.Hour)},
	}
	svc := NewShowService(&fakeShowRepo{listings: listings}, &fakeVenueRepo{}, &fakeArtistRepo{}, time.Second)

	got, err := svc.ListShows(ctx)
	require.NoError(t, err)
	// Past shows are listed too; ordering comes from the repository.
	require.Equal(t, listings, got)
}
