package extractor

// TrackMeta is the raw metadata record the extraction sidecar returns for a
// video URL. Every field except Title is optional.
type TrackMeta struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Creator   string `json:"creator"`
	Uploader  string `json:"uploader"`
	Channel   string `json:"channel"`
	StreamURL string `json:"url"`
}

// Track is the normalized result used when a song is added.
type Track struct {
	Name      string
	Artist    string
	StreamURL string
}

type DownloadMeta struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Format string `json:"format"`
}
