package model

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Args holds the optional CLI flags parsed by go-arg. The program is
// menu-driven; flags only pre-seed the session.
type Args struct {
	CookieBrowser string `arg:"--cookies-from-browser" placeholder:"BROWSER" help:"browser to borrow cookies from (chrome, firefox, brave, ...)"`
	NoClipboard   bool   `arg:"--no-clipboard" help:"never read the system clipboard"`
	ConfigPath    string `arg:"--config" placeholder:"PATH" help:"path to config.json (default: next to the binary)"`
	SkipDepCheck  bool   `arg:"--skip-dep-check" help:"skip the startup check for external tools"`
}

// Version provides go-arg's --version output.
func (Args) Version() string {
	return "quicktube " + Version
}

// Description provides go-arg's help header.
func (Args) Description() string {
	return "Interactive front-end for yt-dlp, svtplay-dl and mpv."
}
