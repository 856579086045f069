package handler

import (
	"context"
	"net/http"

	"betawave/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MusicService . MusicService
type MusicService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ListSongs(ctx context.Context, ident core.Identity) ([]core.SongRecord, error)
	SearchSongs(ctx context.Context, ident core.Identity, term string) ([]core.SongRecord, error)
	AddSong(ctx context.Context, ident core.Identity, msg core.AddSongMessage) (core.SongRecord, error)
	ResolveStream(ctx context.Context, ident core.Identity, songID uint) (core.StreamInfo, error)
	Download(ctx context.Context, ident core.Identity, songID uint, format string) (core.DownloadInfo, error)
	DeleteSong(ctx context.Context, ident core.Identity, songID uint) error
	ToggleFavorite(ctx context.Context, ident core.Identity, songID uint) (bool, error)
	IsFavorite(ctx context.Context, ident core.Identity, songID uint) (bool, error)
	ListFavorites(ctx context.Context, ident core.Identity) ([]core.SongRecord, error)
	GetConfig(ctx context.Context, ident core.Identity) (core.ConfigRecord, error)
	SaveConfig(ctx context.Context, ident core.Identity, cfg core.ConfigRecord) error
	ListUsers(ctx context.Context, ident core.Identity) ([]core.UserRecord, error)
	DeleteUser(ctx context.Context, ident core.Identity, targetID string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
