// Package svtplay builds argument lists for the svtplay-dl binary.
package svtplay

// Tool is the external downloader binary name.
const Tool = "svtplay-dl"

// DownloadArgs fetches the best quality with subtitles merged in.
func DownloadArgs(url string) []string {
	return []string{"-S", "-M", url}
}

// SeriesArgs fetches every episode of the series the URL belongs to.
func SeriesArgs(url string) []string {
	return []string{"-S", "-M", "-A", url}
}

// LastEpisodesArgs fetches the last count episodes of the series. count is
// passed through as typed; callers validate it is a number.
func LastEpisodesArgs(count, url string) []string {
	return []string{"-S", "-M", "-A", "--all-last", count, url}
}

// AudioOnlyArgs fetches the audio track only.
func AudioOnlyArgs(url string) []string {
	return []string{"--only-audio", url}
}
