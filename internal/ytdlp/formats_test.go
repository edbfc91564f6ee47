package ytdlp

import (
	"strings"
	"testing"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/ui"
)

func TestSelectFormatsOneRowPerHeight(t *testing.T) {
	formats := []model.Format{
		{FormatID: "134", Width: 640, Height: 360, FPS: 30, Ext: "mp4", Vcodec: "avc1", Acodec: "none"},
		{FormatID: "243", Width: 640, Height: 360, FPS: 30, Ext: "webm", Vcodec: "vp9", Acodec: "none"},
		{FormatID: "136", Width: 1280, Height: 720, FPS: 30, Ext: "mp4", Vcodec: "avc1", Acodec: "none"},
		{FormatID: "298", Width: 1280, Height: 720, FPS: 60, Ext: "mp4", Vcodec: "avc1", Acodec: "none"},
	}

	rows := SelectFormats(formats)
	seen := map[int]bool{}
	for _, row := range rows {
		if seen[row.Height] {
			t.Fatalf("duplicate height %d in output", row.Height)
		}
		seen[row.Height] = true
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestSelectFormatsDescendingHeights(t *testing.T) {
	formats := []model.Format{
		{FormatID: "a", Width: 640, Height: 360, FPS: 30, Vcodec: "avc1"},
		{FormatID: "b", Width: 3840, Height: 2160, FPS: 30, Vcodec: "vp9"},
		{FormatID: "c", Width: 1920, Height: 1080, FPS: 30, Vcodec: "avc1"},
		{FormatID: "d", Width: 1280, Height: 720, FPS: 30, Vcodec: "avc1"},
	}

	rows := SelectFormats(formats)
	for i := 1; i < len(rows); i++ {
		if rows[i].Height >= rows[i-1].Height {
			t.Fatalf("rows not strictly descending by height: %d then %d",
				rows[i-1].Height, rows[i].Height)
		}
	}
	if rows[0].Height != 2160 {
		t.Fatalf("expected 2160 first, got %d", rows[0].Height)
	}
}

func TestSelectFormatsExcludesNonVideo(t *testing.T) {
	formats := []model.Format{
		{FormatID: "audio", Height: 0, Vcodec: "none", Acodec: "opus"},
		{FormatID: "noheight", Height: 0, Vcodec: "avc1"},
		{FormatID: "storyboard", Height: 90, Vcodec: "none"},
		{FormatID: "ok", Width: 1280, Height: 720, FPS: 30, Vcodec: "avc1"},
	}

	rows := SelectFormats(formats)
	if len(rows) != 1 {
		t.Fatalf("expected only the real video format, got %d rows", len(rows))
	}
	if rows[0].FormatID != "ok" {
		t.Fatalf("unexpected survivor: %q", rows[0].FormatID)
	}
}

func TestSelectFormatsKeepsUnknownVcodec(t *testing.T) {
	// HLS and generic extractors emit a null vcodec with a real height;
	// only an explicit "none" excludes a format.
	formats := []model.Format{
		{FormatID: "hls-720", Width: 1280, Height: 720, Ext: "mp4"},
	}

	rows := SelectFormats(formats)
	if len(rows) != 1 || rows[0].FormatID != "hls-720" {
		t.Fatalf("expected the unknown-vcodec format to survive, got %+v", rows)
	}
}

func TestSelectFormatsHigherFPSWins(t *testing.T) {
	formats := []model.Format{
		{FormatID: "slow", Width: 1280, Height: 720, FPS: 30, Vcodec: "avc1"},
		{FormatID: "fast", Width: 1280, Height: 720, FPS: 60, Vcodec: "avc1"},
	}

	rows := SelectFormats(formats)
	if len(rows) != 1 || rows[0].FormatID != "fast" {
		t.Fatalf("expected the 60fps format to win, got %+v", rows)
	}
}

func TestSelectFormatsEqualFPSKeepsFirst(t *testing.T) {
	formats := []model.Format{
		{FormatID: "first", Width: 1280, Height: 720, FPS: 30, Vcodec: "avc1"},
		{FormatID: "second", Width: 1280, Height: 720, FPS: 30, Vcodec: "vp9"},
	}

	rows := SelectFormats(formats)
	if len(rows) != 1 || rows[0].FormatID != "first" {
		t.Fatalf("expected the first-seen format on an fps tie, got %+v", rows)
	}
}

func TestSelectFormatsEmpty(t *testing.T) {
	if rows := SelectFormats(nil); len(rows) != 0 {
		t.Fatalf("expected no rows for empty input, got %d", len(rows))
	}
}

func TestRenderRowSize(t *testing.T) {
	withSize := model.Format{
		FormatID: "137", Width: 1920, Height: 1080, FPS: 30,
		Ext: "mp4", Vcodec: "avc1", Acodec: "none", Filesize: 52428800,
	}
	label := renderRow(withSize)
	if !strings.Contains(label, "50.0MiB") {
		t.Fatalf("expected 50.0MiB in label, got %q", label)
	}
	if !strings.Contains(label, "1920x1080") {
		t.Fatalf("expected resolution in label, got %q", label)
	}
	if !strings.Contains(label, ui.SymbolAudio+":NO") {
		t.Fatalf("expected audio NO marker, got %q", label)
	}

	approxOnly := withSize
	approxOnly.Filesize = 0
	approxOnly.FilesizeApprox = 10485760
	if label := renderRow(approxOnly); !strings.Contains(label, "10.0MiB") {
		t.Fatalf("expected approximate size fallback, got %q", label)
	}

	noSize := withSize
	noSize.Filesize = 0
	noSize.Acodec = "mp4a.40.2"
	if label := renderRow(noSize); !strings.Contains(label, "N/A") {
		t.Fatalf("expected N/A for unknown size, got %q", label)
	} else if !strings.Contains(label, ui.SymbolAudio+":YES") {
		t.Fatalf("expected audio YES marker, got %q", label)
	}
}

func TestSelectFormatsRowCarriesAudioFlag(t *testing.T) {
	formats := []model.Format{
		{FormatID: "muxed", Width: 1280, Height: 720, FPS: 30, Vcodec: "avc1", Acodec: "mp4a.40.2"},
		{FormatID: "videoonly", Width: 1920, Height: 1080, FPS: 30, Vcodec: "avc1", Acodec: "none"},
	}

	rows := SelectFormats(formats)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].FormatID != "videoonly" || rows[0].HasAudio {
		t.Fatalf("expected 1080p row without audio, got %+v", rows[0])
	}
	if rows[1].FormatID != "muxed" || !rows[1].HasAudio {
		t.Fatalf("expected 720p row with audio, got %+v", rows[1])
	}
}
