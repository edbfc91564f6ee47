package tools

import "os/exec"

// Required lists the external collaborators. All are optional at startup;
// a missing one only limits which menu actions will work.
var Required = []string{"yt-dlp", "svtplay-dl", "mpv", "ffmpeg"}

// critical tools break playback and merging entirely when absent.
var critical = map[string]bool{
	"mpv":    true,
	"ffmpeg": true,
}

// Missing returns the required tools not found on PATH, in Required order.
func Missing() []string {
	var missing []string
	for _, name := range Required {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// AnyCritical reports whether the list contains a tool required for
// playback or merging.
func AnyCritical(names []string) bool {
	for _, name := range names {
		if critical[name] {
			return true
		}
	}
	return false
}
