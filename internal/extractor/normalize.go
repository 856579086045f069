package extractor

import "strings"

const unknownArtist = "Unknown Artist"
const topicSuffix = " - Topic"

// DeriveArtist picks a display artist for a track from heterogeneous video
// metadata. Explicit fields win; otherwise the title and channel are
// inspected for the "Artist - Title" and "<name> - Topic" conventions used
// by auto-generated music channels.
func DeriveArtist(meta TrackMeta) string {
	if meta.Artist != "" {
		return meta.Artist
	}
	if meta.Creator != "" {
		return meta.Creator
	}
	if meta.Uploader != "" {
		return meta.Uploader
	}
	if meta.Channel != "" && !strings.HasSuffix(meta.Channel, topicSuffix) {
		return meta.Channel
	}

	if strings.Contains(meta.Title, " - ") {
		candidate := strings.SplitN(meta.Title, " - ", 2)[0]
		if idx := strings.Index(strings.ToLower(candidate), "topic"); idx >= 0 {
			candidate = candidate[:idx]
		}
		return strings.TrimSpace(candidate)
	}

	if strings.HasSuffix(meta.Channel, topicSuffix) {
		return strings.TrimSpace(strings.TrimSuffix(meta.Channel, topicSuffix))
	}

	return unknownArtist
}
