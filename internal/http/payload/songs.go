package payload

import (
	"regexp"

	"betawave/internal/core"

	"github.com/jellydator/validation"
)

var youtubeURLPattern = regexp.MustCompile(`^https?://(www\.|music\.)?(youtube\.com|youtu\.be)/`)

type AddSongRequest struct {
	SongName   string `json:"song_name"`
	SongArtist string `json:"song_artist"`
	SongURL    string `json:"song_url"`
}

func (a AddSongRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.SongURL, validation.Required,
			validation.Match(youtubeURLPattern).Error("must be a YouTube URL")),
	)
}

func (a AddSongRequest) ToMessage() core.AddSongMessage {
	return core.AddSongMessage{
		Name:   a.SongName,
		Artist: a.SongArtist,
		URL:    a.SongURL,
	}
}

// SongActionRequest covers the play/delete/favorite calls that carry only a
// song id.
type SongActionRequest struct {
	SongID uint `json:"song_id"`
}

func (s SongActionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.SongID, validation.Required),
	)
}

type DownloadRequest struct {
	SongID uint   `json:"song_id"`
	Format string `json:"format"`
}

func (d DownloadRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.SongID, validation.Required),
		validation.Field(&d.Format, validation.In("", "mp3", "m4a", "opus")),
	)
}
