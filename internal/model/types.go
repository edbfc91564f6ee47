package model

// Site identifies which supported service a URL belongs to.
type Site int

const (
	SiteUnknown Site = iota
	SiteYouTube
	SiteSVTPlay
)

func (s Site) String() string {
	switch s {
	case SiteYouTube:
		return "YouTube"
	case SiteSVTPlay:
		return "SVT Play"
	default:
		return "unknown"
	}
}

// Outcome reports how a dispatched action ended.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeDownloaded
	OutcomeStreamed
	OutcomeFailed
)

// SuppressesPrefill reports whether the next loop iteration should skip the
// clipboard pre-fill. After streaming, the stream URL is most likely still on
// the clipboard and offering it again is just noise.
func (o Outcome) SuppressesPrefill() bool {
	return o == OutcomeStreamed
}

func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeStreamed:
		return "streamed"
	case OutcomeFailed:
		return "failed"
	default:
		return "cancelled"
	}
}

// Session holds the per-run options threaded through every command builder.
// There is deliberately no package-level mutable state anywhere; whoever
// needs the cookie browser gets it from here.
type Session struct {
	// CookieBrowser is the locally installed browser whose stored cookies
	// are borrowed for restricted content. Empty means cookies disabled.
	CookieBrowser string
	// OutPath is the download directory. Empty means the current directory.
	OutPath string
}

// Config is the optional config.json found next to the binary.
type Config struct {
	CookieBrowser string `json:"cookieBrowser,omitempty"`
	OutPath       string `json:"outPath,omitempty"`
}

// CookieBrowsers are the choices offered by the cookie-source picker, in
// menu order. The "disabled" entry is rendered by the picker itself.
var CookieBrowsers = []string{
	"chrome", "firefox", "brave", "edge", "safari", "opera", "vivaldi", "chromium",
}
