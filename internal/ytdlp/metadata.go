package ytdlp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/runner"
)

// InfoArgs returns the argv for the cheap metadata probe: one JSON line per
// entry, no format extraction.
func InfoArgs(ses *model.Session, url string) []string {
	args := []string{"--flat-playlist", "--dump-json", "--no-warnings"}
	args = append(args, cookieArgs(ses)...)
	return append(args, url)
}

// FormatsArgs returns the argv for the full single-video JSON dump,
// including the formats array.
func FormatsArgs(ses *model.Session, url string) []string {
	args := []string{"-J"}
	args = append(args, cookieArgs(ses)...)
	return append(args, url)
}

// FetchInfo runs the metadata probe and decodes the first line of output.
// For playlists yt-dlp emits one line per entry; the first carries the
// title and the _type discriminator.
func FetchInfo(ses *model.Session, url string) (*model.VideoInfo, error) {
	out, err := runner.Output(Tool, InfoArgs(ses, url)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNoMetadata, err)
	}
	return ParseInfo(out)
}

// ParseInfo decodes the first non-empty line of a --dump-json output.
func ParseInfo(out []byte) (*model.VideoInfo, error) {
	line := firstLine(out)
	if line == "" {
		return nil, model.ErrNoMetadata
	}
	var info model.VideoInfo
	if err := json.Unmarshal([]byte(line), &info); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnparseableMetadata, err)
	}
	return &info, nil
}

// FetchFormats runs the full JSON dump and returns the raw format list in
// yt-dlp's emission order.
func FetchFormats(ses *model.Session, url string) ([]model.Format, error) {
	out, err := runner.Output(Tool, FormatsArgs(ses, url)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNoMetadata, err)
	}
	return ParseFormats(out)
}

// ParseFormats decodes the formats array of a -J dump.
func ParseFormats(out []byte) ([]model.Format, error) {
	var dump struct {
		Formats []model.Format `json:"formats"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(out), &dump); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnparseableMetadata, err)
	}
	return dump.Formats, nil
}

// IsPlaylist reports whether the record describes a collection rather than
// a single item. The list= query check catches watch URLs that carry a
// playlist context yt-dlp does not mark with _type.
func IsPlaylist(info *model.VideoInfo, url string) bool {
	if info != nil && info.Type == "playlist" {
		return true
	}
	return strings.Contains(url, "list=")
}

func firstLine(out []byte) string {
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
