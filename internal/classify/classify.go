// Package classify decides whether a string is a supported video URL and
// which site it belongs to. Pure string matching, no network access.
package classify

import (
	"regexp"

	"github.com/coffe/quicktube2/internal/model"
)

var sitePatterns = []struct {
	site model.Site
	re   *regexp.Regexp
}{
	{model.SiteYouTube, regexp.MustCompile(`^https?://(www\.)?youtube\.com/`)},
	{model.SiteYouTube, regexp.MustCompile(`^https?://(www\.)?youtu\.be/`)},
	{model.SiteSVTPlay, regexp.MustCompile(`^https?://(www\.)?svtplay\.se/`)},
}

// Classify matches text against the known URL prefixes. Patterns are
// anchored at the start; anything else is SiteUnknown.
func Classify(text string) model.Site {
	for _, p := range sitePatterns {
		if p.re.MatchString(text) {
			return p.site
		}
	}
	return model.SiteUnknown
}

// IsSupported reports whether text is a URL for one of the supported sites.
func IsSupported(text string) bool {
	return Classify(text) != model.SiteUnknown
}
