package application

import (
	"context"
	"fmt"

	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ProfileAggregator struct - Pulls the five Spotify resources and reduces them to a ProfileSummary
type ProfileAggregator struct {
	spotify output.SpotifyClient
}

// NewProfileAggregator func - Creates new profile aggregator
func NewProfileAggregator(spotify output.SpotifyClient) *ProfileAggregator {
	return &ProfileAggregator{
		spotify: spotify,
	}
}

// FetchSummary fetches profile, top artists, top tracks, recently played and playlists concurrently.
// VibeGuess is left for the roast pipeline to fill in.
// The join is all-or-nothing: the first failure cancels the other requests and no partial summary is returned.
func (a *ProfileAggregator) FetchSummary(ctx context.Context, accessToken string) (*domain.ProfileSummary, error) {
	if accessToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	var (
		user      *domain.SpotifyUser
		artists   []domain.SpotifyArtist
		tracks    []domain.SpotifyTrack
		recent    []domain.SpotifyPlayHistory
		playlists []domain.SpotifyPlaylist
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		user, err = a.spotify.GetCurrentUser(egCtx, accessToken)
		return wrapFetch(domain.ResourceProfile, err)
	})
	eg.Go(func() error {
		var err error
		artists, err = a.spotify.GetTopArtists(egCtx, accessToken, domain.MaxTopArtists)
		return wrapFetch(domain.ResourceTopArtists, err)
	})
	eg.Go(func() error {
		var err error
		tracks, err = a.spotify.GetTopTracks(egCtx, accessToken, domain.MaxTopTracks)
		return wrapFetch(domain.ResourceTopTracks, err)
	})
	eg.Go(func() error {
		var err error
		recent, err = a.spotify.GetRecentlyPlayed(egCtx, accessToken, domain.RecentlyPlayedFetchLimit)
		return wrapFetch(domain.ResourceRecentlyPlayed, err)
	})
	eg.Go(func() error {
		var err error
		playlists, err = a.spotify.GetPlaylists(egCtx, accessToken, domain.MaxPlaylists)
		return wrapFetch(domain.ResourcePlaylists, err)
	})

	if err := eg.Wait(); err != nil {
		logrus.Errorf("Failed to aggregate Spotify profile: %v", err)
		return nil, err
	}

	summary := &domain.ProfileSummary{
		DisplayName:  displayName(user),
		TopArtists:   artistNames(artists),
		TopTracks:    trackLabels(tracks),
		RecentTracks: recentLabels(recent),
		Playlists:    playlistNames(playlists),
	}

	return summary, nil
}

func wrapFetch(resource string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to fetch %s: %w", resource, err)
}

func displayName(user *domain.SpotifyUser) string {
	if user == nil || user.DisplayName == "" {
		return domain.DefaultDisplayName
	}
	return user.DisplayName
}

func artistNames(artists []domain.SpotifyArtist) []string {
	names := make([]string, 0, min(len(artists), domain.MaxTopArtists))
	for _, artist := range artists {
		if len(names) == domain.MaxTopArtists {
			break
		}
		names = append(names, orUnknown(artist.Name))
	}
	return names
}

func trackLabels(tracks []domain.SpotifyTrack) []string {
	labels := make([]string, 0, min(len(tracks), domain.MaxTopTracks))
	for i := range tracks {
		if len(labels) == domain.MaxTopTracks {
			break
		}
		labels = append(labels, trackLabel(&tracks[i]))
	}
	return labels
}

func recentLabels(history []domain.SpotifyPlayHistory) []string {
	labels := make([]string, 0, min(len(history), domain.MaxRecentTracks))
	for _, item := range history {
		if len(labels) == domain.MaxRecentTracks {
			break
		}
		labels = append(labels, trackLabel(item.Track))
	}
	return labels
}

func playlistNames(playlists []domain.SpotifyPlaylist) []string {
	names := make([]string, 0, min(len(playlists), domain.MaxPlaylists))
	for _, playlist := range playlists {
		if len(names) == domain.MaxPlaylists {
			break
		}
		names = append(names, orUnknown(playlist.Name))
	}
	return names
}

// trackLabel renders "title – artist", tolerating a missing track or artist list
func trackLabel(track *domain.SpotifyTrack) string {
	if track == nil {
		return domain.UnknownName + " – " + domain.UnknownName
	}
	artist := domain.UnknownName
	if len(track.Artists) > 0 {
		artist = orUnknown(track.Artists[0].Name)
	}
	return orUnknown(track.Name) + " – " + artist
}

func orUnknown(name string) string {
	if name == "" {
		return domain.UnknownName
	}
	return name
}
