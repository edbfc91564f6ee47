package tools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUserBinDirPerOS(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		appData string
		home    string
		want    string
	}{
		{
			name: "windows with APPDATA", goos: "windows",
			appData: `C:\Users\u\AppData\Roaming`, home: `C:\Users\u`,
			want: filepath.Join(`C:\Users\u\AppData\Roaming`, "QuickTube", "bin"),
		},
		{
			name: "windows without APPDATA", goos: "windows",
			home: `C:\Users\u`,
			want: filepath.Join(`C:\Users\u`, "QuickTube", "bin"),
		},
		{
			name: "darwin", goos: "darwin", home: "/Users/u",
			want: filepath.Join("/Users/u", "Library", "Application Support", "QuickTube", "bin"),
		},
		{
			name: "linux", goos: "linux", home: "/home/u",
			want: filepath.Join("/home/u", ".local", "bin", "quicktube_tools"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userBinDir(tt.goos, tt.appData, tt.home); got != tt.want {
				t.Fatalf("userBinDir(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestYtdlpAsset(t *testing.T) {
	tests := []struct {
		goos       string
		wantRemote string
		wantLocal  string
	}{
		{goos: "windows", wantRemote: "yt-dlp.exe", wantLocal: "yt-dlp.exe"},
		{goos: "darwin", wantRemote: "yt-dlp_macos", wantLocal: "yt-dlp"},
		{goos: "linux", wantRemote: "yt-dlp", wantLocal: "yt-dlp"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			remote, local := YtdlpAsset(tt.goos)
			if remote != tt.wantRemote || local != tt.wantLocal {
				t.Fatalf("YtdlpAsset(%q) = %q, %q; want %q, %q",
					tt.goos, remote, local, tt.wantRemote, tt.wantLocal)
			}
		})
	}
}

func TestSvtplayAsset(t *testing.T) {
	if remote, ok := SvtplayAsset("linux"); !ok || remote != "svtplay-dl" {
		t.Fatalf("linux: got %q, %v", remote, ok)
	}
	if remote, ok := SvtplayAsset("windows"); !ok || remote != "svtplay-dl.exe" {
		t.Fatalf("windows: got %q, %v", remote, ok)
	}
	if _, ok := SvtplayAsset("darwin"); ok {
		t.Fatalf("darwin must have no standalone asset")
	}
}

func TestAnyCritical(t *testing.T) {
	if AnyCritical([]string{"svtplay-dl", "yt-dlp"}) {
		t.Fatalf("downloaders alone are not critical")
	}
	if !AnyCritical([]string{"yt-dlp", "ffmpeg"}) {
		t.Fatalf("ffmpeg is critical")
	}
	if !AnyCritical([]string{"mpv"}) {
		t.Fatalf("mpv is critical")
	}
	if AnyCritical(nil) {
		t.Fatalf("empty list is never critical")
	}
}

func TestPrependPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")
	PrependPath("/opt/quicktube/bin")
	want := "/opt/quicktube/bin" + string(os.PathListSeparator) + "/usr/bin"
	if got := os.Getenv("PATH"); !strings.HasPrefix(got, want) {
		t.Fatalf("PATH = %q, want prefix %q", got, want)
	}
}
