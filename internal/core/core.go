package core

import (
	"context"
	"errors"
	"fmt"

	"betawave/internal/events"
	"betawave/internal/extractor"
	"betawave/internal/repository"
	tokenIssuer "betawave/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("username already taken")
var ErrSongNotFound error = errors.New("song not found")
var ErrSongExists error = errors.New("song already in library")
var ErrMissingTitle error = errors.New("could not determine track title")
var ErrInvalidFormat error = errors.New("unsupported download format")
var ErrNotAuthorized error = errors.New("operation requires admin role")
var ErrAdminProtected error = errors.New("admin accounts cannot be deleted")

const defaultVolume = 50

var downloadFormats = map[string]struct{}{
	"mp3":  {},
	"m4a":  {},
	"opus": {},
}

// Betawave is the music library service: account management, the song
// library, favorites, stream resolution and per-user preferences.
type Betawave struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	extractor Extractor
	cache     StreamCache
	events    EventPublisher
}

// NewBetawave is a constructor function for the Betawave type.
func NewBetawave(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, extractor Extractor, cache StreamCache, events EventPublisher) *Betawave {
	return &Betawave{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		extractor: extractor,
		cache:     cache,
		events:    events,
	}
}

// Register creates a new account with the default user role.
func (b *Betawave) Register(ctx context.Context, msg RegisterMessage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, msg.Username, string(hash), msg.Email, repository.RoleUser)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	b.publish(ctx, events.EventTypeUserRegistered, user.ID, nil)
	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (b *Betawave) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := b.repo.GetUserByName(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Role:       user.Role,
		Expiration: 24,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// IdentityFromToken validates a token and resolves the caller identity
// embedded in its claims.
func (b *Betawave) IdentityFromToken(token string) (Identity, error) {
	claims, err := b.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("validate jwt token: %w", err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Identity{}, errors.New("token has no subject claim")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

func (b *Betawave) ListSongs(ctx context.Context, ident Identity) ([]SongRecord, error) {
	songs, err := b.repo.ListSongs(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	return songsToRecords(songs), nil
}

func (b *Betawave) SearchSongs(ctx context.Context, ident Identity, term string) ([]SongRecord, error) {
	songs, err := b.repo.SearchSongs(ctx, ident.UserID, term)
	if err != nil {
		return nil, fmt.Errorf("search songs: %w", err)
	}

	return songsToRecords(songs), nil
}

// AddSong stores a track reference for the caller. When no name is given
// the extraction service is consulted and the artist is derived from the
// raw metadata; a track without any title is rejected.
func (b *Betawave) AddSong(ctx context.Context, ident Identity, msg AddSongMessage) (SongRecord, error) {
	name := msg.Name
	artist := msg.Artist

	if name == "" {
		track, err := b.extractor.ResolveTrack(ctx, msg.URL)
		if err != nil {
			if errors.Is(err, extractor.ErrNoTitle) {
				return SongRecord{}, ErrMissingTitle
			}
			return SongRecord{}, fmt.Errorf("resolve track metadata: %w", err)
		}
		name = track.Name
		if artist == "" {
			artist = track.Artist
		}
	}

	song := repository.Song{
		Name:   name,
		Artist: toPtr(artist),
		URL:    msg.URL,
		UserID: ident.UserID,
	}
	if err := b.repo.CreateSong(ctx, &song); err != nil {
		if errors.Is(err, repository.ErrDuplicateSong) {
			return SongRecord{}, ErrSongExists
		}
		return SongRecord{}, fmt.Errorf("create song: %w", err)
	}

	b.publish(ctx, events.EventTypeSongAdded, ident.UserID, events.SongAddedPayload{
		SongID: song.ID,
		Name:   song.Name,
		Artist: artist,
	})
	b.logs.Infow("song added", "userId", ident.UserID, "songId", song.ID, "name", song.Name)

	return songToRecord(song), nil
}

// ResolveStream resolves a song the caller owns to a playable stream URL,
// via the cache when possible. On extraction failure the returned info
// still carries the source URL so callers can fall back to it.
func (b *Betawave) ResolveStream(ctx context.Context, ident Identity, songID uint) (StreamInfo, error) {
	sourceURL, err := b.repo.GetSongURL(ctx, songID, ident.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return StreamInfo{}, ErrSongNotFound
		}
		return StreamInfo{}, fmt.Errorf("get song url: %w", err)
	}

	cached, err := b.cache.Get(ctx, sourceURL)
	if err != nil {
		b.logs.Errorw("stream cache lookup failed", "error", err, "songId", songID)
	} else if cached != "" {
		return StreamInfo{SongID: songID, StreamURL: cached, SourceURL: sourceURL}, nil
	}

	streamURL, err := b.extractor.StreamURL(ctx, sourceURL)
	if err != nil {
		return StreamInfo{SongID: songID, SourceURL: sourceURL},
			fmt.Errorf("resolve stream: %w", err)
	}

	if err := b.cache.Set(ctx, sourceURL, streamURL); err != nil {
		b.logs.Errorw("stream cache store failed", "error", err, "songId", songID)
	}

	return StreamInfo{SongID: songID, StreamURL: streamURL, SourceURL: sourceURL}, nil
}

// Download resolves a song the caller owns to a downloadable audio file in
// the requested format (mp3 when empty).
func (b *Betawave) Download(ctx context.Context, ident Identity, songID uint, format string) (DownloadInfo, error) {
	if format == "" {
		format = "mp3"
	}
	if _, ok := downloadFormats[format]; !ok {
		return DownloadInfo{}, ErrInvalidFormat
	}

	sourceURL, err := b.repo.GetSongURL(ctx, songID, ident.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return DownloadInfo{}, ErrSongNotFound
		}
		return DownloadInfo{}, fmt.Errorf("get song url: %w", err)
	}

	meta, err := b.extractor.DownloadLink(ctx, sourceURL, format)
	if err != nil {
		return DownloadInfo{}, fmt.Errorf("resolve download: %w", err)
	}

	return DownloadInfo{
		Title:  meta.Title,
		URL:    meta.URL,
		Format: meta.Format,
	}, nil
}

func (b *Betawave) DeleteSong(ctx context.Context, ident Identity, songID uint) error {
	sourceURL, err := b.repo.GetSongURL(ctx, songID, ident.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return ErrSongNotFound
		}
		return fmt.Errorf("get song url: %w", err)
	}

	if err := b.repo.DeleteSong(ctx, songID, ident.UserID); err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return ErrSongNotFound
		}
		return fmt.Errorf("delete song: %w", err)
	}

	if err := b.cache.Invalidate(ctx, sourceURL); err != nil {
		b.logs.Errorw("could not invalidate cached stream", "error", err, "songId", songID)
	}

	b.publish(ctx, events.EventTypeSongDeleted, ident.UserID, events.SongDeletedPayload{
		SongID: songID,
	})
	b.logs.Infow("song deleted", "userId", ident.UserID, "songId", songID)
	return nil
}

// ToggleFavorite flips the caller's favorite state for a song. Any existing
// song can be favorited, not only the caller's own.
func (b *Betawave) ToggleFavorite(ctx context.Context, ident Identity, songID uint) (bool, error) {
	exists, err := b.repo.SongExists(ctx, songID)
	if err != nil {
		return false, fmt.Errorf("check song exists: %w", err)
	}
	if !exists {
		return false, ErrSongNotFound
	}

	favorite, err := b.repo.IsFavorite(ctx, ident.UserID, songID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if favorite {
		if _, err := b.repo.RemoveFavorite(ctx, ident.UserID, songID); err != nil {
			return false, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}

	err = b.repo.AddFavorite(ctx, ident.UserID, songID)
	if err != nil {
		// lost the race to a concurrent toggle, the outcome is the same
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return true, nil
		}
		return false, fmt.Errorf("add favorite: %w", err)
	}

	return true, nil
}

func (b *Betawave) IsFavorite(ctx context.Context, ident Identity, songID uint) (bool, error) {
	favorite, err := b.repo.IsFavorite(ctx, ident.UserID, songID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return favorite, nil
}

func (b *Betawave) ListFavorites(ctx context.Context, ident Identity) ([]SongRecord, error) {
	songs, err := b.repo.ListFavorites(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return songsToRecords(songs), nil
}

// GetConfig returns the caller's display preferences; a missing row means
// defaults, never an error.
func (b *Betawave) GetConfig(ctx context.Context, ident Identity) (ConfigRecord, error) {
	cfg, err := b.repo.GetUserConfig(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return ConfigRecord{DarkMode: false, DefaultVolume: defaultVolume}, nil
		}
		return ConfigRecord{}, fmt.Errorf("get user config: %w", err)
	}

	return ConfigRecord{
		DarkMode:      cfg.DarkMode,
		DefaultVolume: cfg.DefaultVolume,
	}, nil
}

func (b *Betawave) SaveConfig(ctx context.Context, ident Identity, cfg ConfigRecord) error {
	err := b.repo.SaveUserConfig(ctx, repository.UserConfig{
		UserID:        ident.UserID,
		DarkMode:      cfg.DarkMode,
		DefaultVolume: cfg.DefaultVolume,
	})
	if err != nil {
		return fmt.Errorf("save user config: %w", err)
	}

	return nil
}

// ListUsers is admin-only.
func (b *Betawave) ListUsers(ctx context.Context, ident Identity) ([]UserRecord, error) {
	if !ident.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	users, err := b.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = UserRecord{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		}
		if user.Email != nil {
			records[i].Email = *user.Email
		}
	}

	return records, nil
}

// DeleteUser is admin-only and refuses to remove admin accounts.
func (b *Betawave) DeleteUser(ctx context.Context, ident Identity, targetID string) error {
	if !ident.IsAdmin() {
		return ErrNotAuthorized
	}

	target, err := b.repo.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	err = b.repo.DeleteUser(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, repository.ErrAdminProtected) {
			return ErrAdminProtected
		}
		return fmt.Errorf("delete user: %w", err)
	}

	b.publish(ctx, events.EventTypeUserDeleted, ident.UserID, events.UserDeletedPayload{
		Username: target.Username,
	})
	b.logs.Infow("user deleted", "adminId", ident.UserID, "userId", targetID)
	return nil
}

// publish emits an activity event; failures are logged, never surfaced.
func (b *Betawave) publish(ctx context.Context, eventType events.EventType, userID string, payload any) {
	event, err := events.NewEvent(eventType, userID, payload)
	if err != nil {
		b.logs.Errorw("failed to build event", "error", err, "type", eventType)
		return
	}

	if err := b.events.Publish(ctx, event); err != nil {
		b.logs.Errorw("failed to publish event", "error", err, "type", eventType)
	}
}

func songToRecord(song repository.Song) SongRecord {
	record := SongRecord{
		ID:   song.ID,
		Name: song.Name,
		URL:  song.URL,
	}
	if song.Artist != nil {
		record.Artist = *song.Artist
	}
	return record
}

func songsToRecords(songs []repository.Song) []SongRecord {
	records := make([]SongRecord, len(songs))
	for i, song := range songs {
		records[i] = songToRecord(song)
	}
	return records
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
