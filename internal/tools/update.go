package tools

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/coffe/quicktube2/internal/session"
)

const (
	ytdlpReleaseBase   = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"
	svtplayReleaseBase = "https://github.com/spaam/svtplay-dl/releases/latest/download/"
)

var httpClient = &http.Client{Timeout: 5 * time.Minute}

// ErrNoReleaseAsset is returned when the upstream project publishes no
// standalone binary for this OS.
var ErrNoReleaseAsset = errors.New("no standalone release asset for this OS")

// YtdlpAsset returns the release asset name and the local file name for the
// given OS. The macOS asset carries an _macos suffix upstream but is
// installed under the plain tool name.
func YtdlpAsset(goos string) (remote, local string) {
	switch goos {
	case "windows":
		return "yt-dlp.exe", "yt-dlp.exe"
	case "darwin":
		return "yt-dlp_macos", "yt-dlp"
	default:
		return "yt-dlp", "yt-dlp"
	}
}

// SvtplayAsset returns the svtplay-dl asset name for the given OS. ok is
// false on darwin, where the release only ships a zip that needs manual
// handling.
func SvtplayAsset(goos string) (remote string, ok bool) {
	switch goos {
	case "windows":
		return "svtplay-dl.exe", true
	case "darwin":
		return "", false
	default:
		return "svtplay-dl", true
	}
}

// UpdateYtdlp downloads the latest yt-dlp release into binDir and returns
// the number of bytes written.
func UpdateYtdlp(binDir string) (int64, error) {
	remote, local := YtdlpAsset(runtime.GOOS)
	return fetchTool(ytdlpReleaseBase+remote, filepath.Join(binDir, local))
}

// UpdateSvtplay downloads the latest svtplay-dl release into binDir.
func UpdateSvtplay(binDir string) (int64, error) {
	remote, ok := SvtplayAsset(runtime.GOOS)
	if !ok {
		return 0, ErrNoReleaseAsset
	}
	return fetchTool(svtplayReleaseBase+remote, filepath.Join(binDir, remote))
}

// fetchTool downloads url into dest and marks it executable off Windows.
func fetchTool(url, dest string) (int64, error) {
	session.Logf("downloading %s", url)
	resp, err := httpClient.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}
	f, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, err
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(dest, 0o755); err != nil {
			return n, err
		}
	}
	return n, nil
}
