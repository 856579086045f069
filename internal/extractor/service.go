package extractor

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoTitle error = errors.New("extracted metadata has no title")
var ErrNoStream error = errors.New("extracted metadata has no stream url")

type Service struct {
	client ExtractClient
}

func NewService(client ExtractClient) *Service {
	return &Service{
		client: client,
	}
}

// ResolveTrack extracts metadata for a video URL and normalizes it into a
// track. A missing title is a hard error, there is no fallback name.
func (s *Service) ResolveTrack(ctx context.Context, url string) (Track, error) {
	meta, err := s.client.Extract(ctx, url)
	if err != nil {
		return Track{}, fmt.Errorf("extract metadata: %w", err)
	}

	if meta.Title == "" {
		return Track{}, ErrNoTitle
	}

	return Track{
		Name:      meta.Title,
		Artist:    DeriveArtist(*meta),
		StreamURL: meta.StreamURL,
	}, nil
}

// StreamURL resolves a video URL to a directly playable audio stream URL.
func (s *Service) StreamURL(ctx context.Context, url string) (string, error) {
	meta, err := s.client.Extract(ctx, url)
	if err != nil {
		return "", fmt.Errorf("extract metadata: %w", err)
	}

	if meta.StreamURL == "" {
		return "", ErrNoStream
	}

	return meta.StreamURL, nil
}

// DownloadLink resolves a video URL to a downloadable audio file in the
// requested format.
func (s *Service) DownloadLink(ctx context.Context, url, format string) (DownloadMeta, error) {
	meta, err := s.client.Download(ctx, url, format)
	if err != nil {
		return DownloadMeta{}, fmt.Errorf("download link: %w", err)
	}

	return *meta, nil
}
