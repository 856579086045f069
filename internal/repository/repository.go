package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"betawave/internal/db"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUser error = errors.New("username already exists")
var ErrSongNotFound error = errors.New("song not found")
var ErrDuplicateSong error = errors.New("song already exists")
var ErrDuplicateFavorite error = errors.New("favorite already exists")
var ErrConfigNotFound error = errors.New("user config not found")
var ErrAdminProtected error = errors.New("admin accounts cannot be deleted")

// Default admin account created on first startup.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

type LibraryRepository struct {
	db Storage
}

func NewLibraryRepository(db Storage) *LibraryRepository {
	return &LibraryRepository{
		db: db,
	}
}

// MigrateAndSeed creates the schema and, on an empty users table, seeds the
// default admin account.
func (r *LibraryRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&User{}, &Song{}, &Favorite{}, &UserConfig{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     adminUsername,
			PasswordHash: string(hash),
			Role:         RoleAdmin,
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *LibraryRepository) CreateUser(ctx context.Context, username, passwordHash string, email *string, role string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Role:         role,
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUser
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *LibraryRepository) GetUserByName(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *LibraryRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *LibraryRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *LibraryRepository) ListSongs(ctx context.Context, userID string) ([]Song, error) {
	songs := []Song{}
	err := r.db.GetAllWhere(ctx, &songs, "user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	return songs, nil
}

// SearchSongs matches the term case-insensitively against song name and
// artist. An empty term matches everything the user owns.
func (r *LibraryRepository) SearchSongs(ctx context.Context, userID, term string) ([]Song, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	songs := []Song{}
	err := r.db.GetAllWhere(ctx, &songs,
		"user_id = ? AND (LOWER(name) LIKE ? OR LOWER(artist) LIKE ?)",
		userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search songs: %w", err)
	}

	return songs, nil
}

func (r *LibraryRepository) CreateSong(ctx context.Context, song *Song) error {
	err := r.db.Create(ctx, song)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateSong
		}
		return fmt.Errorf("create song: %w", err)
	}

	return nil
}

// GetSongURL is owner-scoped: it never returns the URL of a song owned by
// another user.
func (r *LibraryRepository) GetSongURL(ctx context.Context, songID uint, userID string) (string, error) {
	var song Song

	err := r.db.GetOneWhere(ctx, &song, "id = ? AND user_id = ?", songID, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrSongNotFound
		}
		return "", fmt.Errorf("get song url: %w", err)
	}

	return song.URL, nil
}

// DeleteSong removes a song the caller owns, dependent favorite rows first
// so a failure in between never leaves a favorite without its song.
func (r *LibraryRepository) DeleteSong(ctx context.Context, songID uint, userID string) error {
	var song Song
	err := r.db.GetOneWhere(ctx, &song, "id = ? AND user_id = ?", songID, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrSongNotFound
		}
		return fmt.Errorf("get song: %w", err)
	}

	if _, err := r.db.DeleteWhere(ctx, &Favorite{}, "song_id = ?", songID); err != nil {
		return fmt.Errorf("delete song favorites: %w", err)
	}

	if _, err := r.db.DeleteWhere(ctx, &Song{}, "id = ? AND user_id = ?", songID, userID); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}

	return nil
}

func (r *LibraryRepository) SongExists(ctx context.Context, songID uint) (bool, error) {
	var song Song

	err := r.db.GetOneWhere(ctx, &song, "id = ?", songID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get song: %w", err)
	}

	return true, nil
}

func (r *LibraryRepository) IsFavorite(ctx context.Context, userID string, songID uint) (bool, error) {
	var fav Favorite

	err := r.db.GetOneWhere(ctx, &fav, "user_id = ? AND song_id = ?", userID, songID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get favorite: %w", err)
	}

	return true, nil
}

func (r *LibraryRepository) AddFavorite(ctx context.Context, userID string, songID uint) error {
	fav := Favorite{
		UserID: userID,
		SongID: songID,
	}

	err := r.db.Create(ctx, &fav)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateFavorite
		}
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (r *LibraryRepository) RemoveFavorite(ctx context.Context, userID string, songID uint) (bool, error) {
	rows, err := r.db.DeleteWhere(ctx, &Favorite{}, "user_id = ? AND song_id = ?", userID, songID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}

	return rows > 0, nil
}

func (r *LibraryRepository) ListFavorites(ctx context.Context, userID string) ([]Song, error) {
	var favorites []Favorite

	err := r.db.GetAllWhere(ctx, &favorites, "user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	if len(favorites) == 0 {
		return []Song{}, nil
	}

	songIDs := make([]uint, 0, len(favorites))
	for _, fav := range favorites {
		songIDs = append(songIDs, fav.SongID)
	}

	songs := []Song{}
	err = r.db.GetAllBy(ctx, "id", songIDs, &songs)
	if err != nil {
		return nil, fmt.Errorf("get favorite songs: %w", err)
	}

	return songs, nil
}

func (r *LibraryRepository) GetUserConfig(ctx context.Context, userID string) (UserConfig, error) {
	var cfg UserConfig

	err := r.db.GetOneBy(ctx, "user_id", userID, &cfg)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserConfig{}, ErrConfigNotFound
		}
		return UserConfig{}, fmt.Errorf("get user config: %w", err)
	}

	return cfg, nil
}

func (r *LibraryRepository) SaveUserConfig(ctx context.Context, cfg UserConfig) error {
	err := r.db.Upsert(ctx, &cfg, "user_id")
	if err != nil {
		return fmt.Errorf("save user config: %w", err)
	}

	return nil
}

// DeleteUser cascades favorites (the user's own and those other users hold
// on the user's songs), then songs, config and finally the user row.
func (r *LibraryRepository) DeleteUser(ctx context.Context, userID string) error {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == RoleAdmin {
		return ErrAdminProtected
	}

	var songs []Song
	if err := r.db.GetAllWhere(ctx, &songs, "user_id = ?", userID); err != nil {
		return fmt.Errorf("get user songs: %w", err)
	}

	if _, err := r.db.DeleteWhere(ctx, &Favorite{}, "user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user favorites: %w", err)
	}

	if len(songs) > 0 {
		songIDs := make([]uint, 0, len(songs))
		for _, song := range songs {
			songIDs = append(songIDs, song.ID)
		}
		if _, err := r.db.DeleteWhere(ctx, &Favorite{}, "song_id IN ?", songIDs); err != nil {
			return fmt.Errorf("delete favorites on user songs: %w", err)
		}
	}

	if _, err := r.db.DeleteWhere(ctx, &Song{}, "user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user songs: %w", err)
	}

	if _, err := r.db.DeleteWhere(ctx, &UserConfig{}, "user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user config: %w", err)
	}

	if _, err := r.db.DeleteWhere(ctx, &User{}, "id = ?", userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
