package app

import (
	"strings"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/player"
	"github.com/coffe/quicktube2/internal/svtplay"
	"github.com/coffe/quicktube2/internal/ui"
	"github.com/coffe/quicktube2/internal/ytdlp"
)

const (
	svtActBest        = "Download (best quality + subtitles)"
	svtActSeries      = "Download whole series (svtplay-dl)"
	svtActSeriesYtdlp = "Download whole series (yt-dlp)"
	svtActEpisodes    = "Download specific episodes (yt-dlp)"
	svtActLast        = "Download the last N episodes (svtplay-dl)"
	svtActStream      = "Stream (mpv)"
	svtActAudio       = "Download audio only"
)

var svtChoices = []string{
	svtActBest, svtActSeries, svtActSeriesYtdlp,
	svtActEpisodes, svtActLast, svtActStream, svtActAudio,
}

func (a *App) handleSVTPlay(url string) model.Outcome {
	_, action, err := ui.Select("SVT Play link detected. What do you want to do?", svtChoices)
	if err != nil {
		return model.OutcomeCancelled
	}

	switch action {
	case svtActStream:
		return player.Stream(url)

	case svtActBest:
		ui.PrintDownload("Starting download from SVT Play...")
		return a.runTool(svtplay.Tool, svtplay.DownloadArgs(url))

	case svtActSeries:
		ui.PrintDownload("Starting download of entire series...")
		return a.runTool(svtplay.Tool, svtplay.SeriesArgs(url))

	case svtActSeriesYtdlp:
		ui.PrintDownload("Starting download of entire series with yt-dlp...")
		return a.runTool(ytdlp.Tool, ytdlp.SeriesArgs(a.Session, url))

	case svtActEpisodes:
		items, err := ui.Input("Episodes (e.g. 1, 2-5, 10)", "")
		if err != nil || strings.TrimSpace(items) == "" {
			return model.OutcomeCancelled
		}
		ui.PrintDownload("Downloading episodes " + strings.TrimSpace(items) + " with yt-dlp...")
		return a.runTool(ytdlp.Tool, ytdlp.EpisodesArgs(a.Session, strings.TrimSpace(items), url))

	case svtActLast:
		count, err := ui.Input("Number of episodes from the end (e.g. 5)", "")
		if err != nil {
			return model.OutcomeCancelled
		}
		count = strings.TrimSpace(count)
		if !isDigits(count) {
			ui.PrintError("Invalid number specified.")
			return model.OutcomeCancelled
		}
		ui.PrintDownload("Downloading the last " + count + " episodes...")
		return a.runTool(svtplay.Tool, svtplay.LastEpisodesArgs(count, url))

	case svtActAudio:
		ui.PrintDownload("Downloading audio only...")
		return a.runTool(svtplay.Tool, svtplay.AudioOnlyArgs(url))
	}
	return model.OutcomeCancelled
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
