package app

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/player"
	"github.com/coffe/quicktube2/internal/ui"
	"github.com/coffe/quicktube2/internal/ytdlp"
)

const (
	actStreamVideo   = "Stream Video (mpv)"
	actStreamAudio   = "Stream Audio (mpv)"
	actDownloadVideo = "Download video"
	actDownloadAudio = "Download audio"

	actPlaylistStreamVideo   = "Stream Full Playlist (Video)"
	actPlaylistStreamAudio   = "Stream Full Playlist (Audio)"
	actPlaylistDownloadVideo = "Download Full Playlist (Video)"
	actPlaylistDownloadAudio = "Download Full Playlist (Audio)"
)

func (a *App) handleYouTube(url string) model.Outcome {
	ui.PrintDim("Fetching video info...")
	info, err := ytdlp.FetchInfo(a.Session, url)
	if err != nil {
		ui.PrintError(err.Error())
		if a.Session.CookieBrowser == "" {
			ui.PrintWarning("Tip: try selecting a cookie browser in the main menu.")
		}
		return model.OutcomeFailed
	}

	title := displayTitle(info.Title)
	if ytdlp.IsPlaylist(info, url) {
		return a.youtubePlaylist(url, info, title)
	}
	return a.youtubeSingle(url, title)
}

func (a *App) youtubeSingle(url, title string) model.Outcome {
	_, action, err := ui.Select("Video: "+title,
		[]string{actStreamVideo, actStreamAudio, actDownloadVideo, actDownloadAudio})
	if err != nil {
		return model.OutcomeCancelled
	}

	switch action {
	case actStreamVideo:
		return player.Stream(url)
	case actStreamAudio:
		return player.StreamAudio(url)
	case actDownloadAudio:
		ui.PrintDownload("Starting audio download...")
		return a.runTool(ytdlp.Tool, ytdlp.AudioArgs(a.Session, url))
	case actDownloadVideo:
		return a.downloadVideoFormat(url)
	}
	return model.OutcomeCancelled
}

func (a *App) youtubePlaylist(url string, info *model.VideoInfo, title string) model.Outcome {
	label := "Playlist detected: " + title
	if info.PlaylistCount > 0 {
		label = fmt.Sprintf("Playlist detected: %s (%s entries)",
			title, humanize.Comma(int64(info.PlaylistCount)))
	}

	_, action, err := ui.Select(label, []string{
		actPlaylistStreamVideo, actPlaylistStreamAudio,
		actPlaylistDownloadVideo, actPlaylistDownloadAudio,
	})
	if err != nil {
		return model.OutcomeCancelled
	}

	switch action {
	case actPlaylistStreamVideo:
		return player.Stream(url)
	case actPlaylistStreamAudio:
		return player.StreamAudio(url)
	case actPlaylistDownloadVideo:
		ui.PrintDownload("Starting download of full playlist (video)...")
		return a.runTool(ytdlp.Tool, ytdlp.PlaylistVideoArgs(a.Session, url))
	case actPlaylistDownloadAudio:
		ui.PrintDownload("Starting download of full playlist (audio)...")
		return a.runTool(ytdlp.Tool, ytdlp.PlaylistAudioArgs(a.Session, url))
	}
	return model.OutcomeCancelled
}

// downloadVideoFormat lets the user pick one of the deduplicated quality
// rows, then downloads that exact format.
func (a *App) downloadVideoFormat(url string) model.Outcome {
	ui.PrintDim("Fetching available formats...")
	formats, err := ytdlp.FetchFormats(a.Session, url)
	if err != nil {
		ui.PrintError(err.Error())
		return model.OutcomeFailed
	}

	rows := ytdlp.SelectFormats(formats)
	if len(rows) == 0 {
		ui.PrintError("No downloadable video formats found.")
		return model.OutcomeFailed
	}

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	idx, _, err := ui.Select("Select quality (ID | Resolution | FPS | Type | Audio | Size)", labels)
	if err != nil {
		return model.OutcomeCancelled
	}

	ui.PrintDownload("Starting video download...")
	return a.runTool(ytdlp.Tool, ytdlp.VideoArgs(a.Session, rows[idx], url))
}

// displayTitle keeps long titles on one menu line.
func displayTitle(title string) string {
	if title == "" {
		return "Unknown title"
	}
	return ui.TruncateWithEllipsis(title, 60)
}
