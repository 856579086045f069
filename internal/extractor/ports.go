package extractor

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExtractClient . ExtractClient
type ExtractClient interface {
	Extract(ctx context.Context, url string) (*TrackMeta, error)
	Download(ctx context.Context, url, format string) (*DownloadMeta, error)
}
