package core

import (
	"context"

	"betawave/internal/events"
	"betawave/internal/extractor"
	"betawave/internal/repository"
	tokenIssuer "betawave/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string, email *string, role string) (repository.User, error)
	GetUserByName(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	ListSongs(ctx context.Context, userID string) ([]repository.Song, error)
	SearchSongs(ctx context.Context, userID, term string) ([]repository.Song, error)
	CreateSong(ctx context.Context, song *repository.Song) error
	GetSongURL(ctx context.Context, songID uint, userID string) (string, error)
	DeleteSong(ctx context.Context, songID uint, userID string) error
	SongExists(ctx context.Context, songID uint) (bool, error)
	IsFavorite(ctx context.Context, userID string, songID uint) (bool, error)
	AddFavorite(ctx context.Context, userID string, songID uint) error
	RemoveFavorite(ctx context.Context, userID string, songID uint) (bool, error)
	ListFavorites(ctx context.Context, userID string) ([]repository.Song, error)
	GetUserConfig(ctx context.Context, userID string) (repository.UserConfig, error)
	SaveUserConfig(ctx context.Context, cfg repository.UserConfig) error
	DeleteUser(ctx context.Context, userID string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Extractor . Extractor
type Extractor interface {
	ResolveTrack(ctx context.Context, url string) (extractor.Track, error)
	StreamURL(ctx context.Context, url string) (string, error)
	DownloadLink(ctx context.Context, url, format string) (extractor.DownloadMeta, error)
}

//counterfeiter:generate -o fake -fake-name StreamCache . StreamCache
type StreamCache interface {
	Get(ctx context.Context, sourceURL string) (string, error)
	Set(ctx context.Context, sourceURL, streamURL string) error
	Invalidate(ctx context.Context, sourceURL string) error
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
