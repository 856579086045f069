package core

import "time"

// Identity is the resolved caller passed explicitly into every operation.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterMessage struct {
	Username string
	Password string
	Email    *string
}

type AddSongMessage struct {
	Name   string
	Artist string
	URL    string
}

type SongRecord struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist,omitempty"`
	URL    string `json:"url,omitempty"`
}

type UserRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type StreamInfo struct {
	SongID    uint   `json:"song_id"`
	StreamURL string `json:"audio_stream_url"`
	SourceURL string `json:"-"`
}

type DownloadInfo struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

type ConfigRecord struct {
	DarkMode      bool `json:"darkMode"`
	DefaultVolume int  `json:"defaultVolume"`
}
