package ytdlp

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/ui"
)

// SelectFormats reduces yt-dlp's raw format list to one entry per vertical
// resolution, ordered by resolution descending.
//
// Records without a video track and records without a height are dropped.
// Within a resolution the highest frame rate wins; equal frame rates keep
// whichever record came first in the tool's emission order.
func SelectFormats(formats []model.Format) []model.FormatRow {
	best := make(map[int]model.Format, len(formats))
	for _, f := range formats {
		if !f.HasVideo() || f.Height == 0 {
			continue
		}
		cur, seen := best[f.Height]
		if !seen || f.FPS > cur.FPS {
			best[f.Height] = f
		}
	}

	heights := make([]int, 0, len(best))
	for h := range best {
		heights = append(heights, h)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heights)))

	rows := make([]model.FormatRow, 0, len(heights))
	for _, h := range heights {
		f := best[h]
		rows = append(rows, model.FormatRow{
			Label:    renderRow(f),
			FormatID: f.FormatID,
			Height:   h,
			HasAudio: f.HasAudio(),
		})
	}
	return rows
}

// renderRow produces one fixed-width quality line:
// id | WxH | fps | ext | audio marker | size.
func renderRow(f model.Format) string {
	res := fmt.Sprintf("%dx%d", f.Width, f.Height)
	fps := strconv.FormatFloat(f.FPS, 'f', -1, 64)
	audio := "NO "
	if f.HasAudio() {
		audio = "YES"
	}
	size := "N/A"
	if n := f.Size(); n > 0 {
		size = fmt.Sprintf("%.1fMiB", float64(n)/(1024*1024))
	}
	return fmt.Sprintf("%-5s | %-9s | %-4s | %-4s | %s:%s | %s",
		f.FormatID, res, fps, f.Ext, ui.SymbolAudio, audio, size)
}
