// Package ytdlp builds argument lists for the yt-dlp binary and decodes its
// JSON metadata output. yt-dlp itself is a black box; the contract is its
// exit code plus the documented dump formats.
package ytdlp

import (
	"github.com/coffe/quicktube2/internal/model"
)

// Tool is the external downloader binary name.
const Tool = "yt-dlp"

// Output templates, taken from the menu actions they serve.
const (
	videoTemplate    = "%(title)s-%(height)sp.%(ext)s"
	audioTemplate    = "%(title)s.%(ext)s"
	playlistTemplate = "%(playlist)s/%(playlist_index)02d - %(title)s.%(ext)s"
	seriesTemplate   = "%(series)s/S%(season_number)02dE%(episode_number)02d - %(title)s.%(ext)s"
)

const playlistVideoFormat = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// BaseArgs is the flag set shared by every download invocation, plus the
// session's cookie source when one is selected.
func BaseArgs(ses *model.Session) []string {
	args := []string{"--no-warnings", "--force-overwrites", "--embed-metadata", "--embed-thumbnail"}
	return append(args, cookieArgs(ses)...)
}

func cookieArgs(ses *model.Session) []string {
	if ses == nil || ses.CookieBrowser == "" {
		return nil
	}
	return []string{"--cookies-from-browser", ses.CookieBrowser}
}

func outputArgs(ses *model.Session, template string) []string {
	var args []string
	if ses != nil && ses.OutPath != "" {
		args = append(args, "-P", ses.OutPath)
	}
	return append(args, "-o", template)
}

// VideoArgs builds the argv for downloading one video in the picked format.
// Rows without an audio track get a best-audio stream muxed in.
func VideoArgs(ses *model.Session, row model.FormatRow, url string) []string {
	format := row.FormatID
	if !row.HasAudio {
		format += "+bestaudio"
	}
	args := BaseArgs(ses)
	args = append(args, "-f", format, "--merge-output-format", "mp4")
	args = append(args, outputArgs(ses, videoTemplate)...)
	return append(args, url)
}

// AudioArgs builds the argv for extracting best audio as opus.
func AudioArgs(ses *model.Session, url string) []string {
	args := BaseArgs(ses)
	args = append(args, "-f", "bestaudio/best", "-x", "--audio-format", "opus")
	args = append(args, outputArgs(ses, audioTemplate)...)
	return append(args, url)
}

// PlaylistVideoArgs builds the argv for downloading a full playlist as
// mp4 video, one numbered file per entry under the playlist's folder.
func PlaylistVideoArgs(ses *model.Session, url string) []string {
	args := BaseArgs(ses)
	args = append(args, "-f", playlistVideoFormat, "--merge-output-format", "mp4")
	args = append(args, outputArgs(ses, playlistTemplate)...)
	return append(args, url)
}

// PlaylistAudioArgs builds the argv for downloading a full playlist as opus
// audio.
func PlaylistAudioArgs(ses *model.Session, url string) []string {
	args := BaseArgs(ses)
	args = append(args, "-f", "bestaudio/best", "-x", "--audio-format", "opus")
	args = append(args, outputArgs(ses, playlistTemplate)...)
	return append(args, url)
}

// SeriesArgs builds the argv for downloading a whole series with embedded
// subtitles, named SxxEyy under the series folder.
func SeriesArgs(ses *model.Session, url string) []string {
	args := BaseArgs(ses)
	args = append(args, "--embed-subs", "--write-subs", "--sub-langs", "all")
	args = append(args, outputArgs(ses, seriesTemplate)...)
	return append(args, url)
}

// EpisodesArgs is SeriesArgs restricted to specific playlist items,
// e.g. "1, 2-5, 10".
func EpisodesArgs(ses *model.Session, items, url string) []string {
	args := BaseArgs(ses)
	args = append(args, "--embed-subs", "--write-subs", "--sub-langs", "all")
	args = append(args, "--playlist-items", items)
	args = append(args, outputArgs(ses, seriesTemplate)...)
	return append(args, url)
}
