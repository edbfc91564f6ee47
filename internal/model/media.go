package model

// Format is one stream format descriptor as emitted by yt-dlp's JSON dump.
// Fields yt-dlp reports as null decode to their zero values, which is what
// the selector's filters key off.
type Format struct {
	FormatID       string  `json:"format_id"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	FPS            float64 `json:"fps"`
	Ext            string  `json:"ext"`
	Vcodec         string  `json:"vcodec"`
	Acodec         string  `json:"acodec"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
}

// HasVideo reports whether the format carries a video track. yt-dlp emits
// a null vcodec for some HLS/generic extractors even when the height is
// known; only an explicit "none" marks a format as video-less.
func (f Format) HasVideo() bool {
	return f.Vcodec != "none"
}

// HasAudio reports whether the format carries an audio track. Formats
// without one get a best-audio stream muxed in at download time.
func (f Format) HasAudio() bool {
	return f.Acodec != "" && f.Acodec != "none"
}

// Size returns the exact file size when known, the approximate one
// otherwise, and 0 when yt-dlp reports neither.
func (f Format) Size() int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	return f.FilesizeApprox
}

// FormatRow is one pickable entry in the quality menu.
type FormatRow struct {
	Label    string
	FormatID string
	Height   int
	HasAudio bool
}

// VideoInfo is the first line of `yt-dlp --flat-playlist --dump-json`:
// a single self-describing record for a video or a playlist.
type VideoInfo struct {
	Title         string `json:"title"`
	Type          string `json:"_type"`
	PlaylistCount int    `json:"playlist_count"`
}
