package model

// VideoBlock is the subset of the host's video component state that is
// adjusted after the editor saves it.
type VideoBlock struct {
	EdxVideoID   string   `json:"edx_video_id"`
	Sub          string   `json:"sub"`
	HTML5Sources []string `json:"html5_sources"`
	YoutubeID    string   `json:"youtube_id_1_0"`
}
