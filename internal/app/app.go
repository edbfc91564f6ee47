// Package app drives the interactive loop: detect a URL, offer the actions
// that fit it, run the chosen external command, re-prompt.
package app

import (
	"fmt"
	"strings"

	"github.com/coffe/quicktube2/internal/classify"
	"github.com/coffe/quicktube2/internal/clipboard"
	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/runner"
	"github.com/coffe/quicktube2/internal/session"
	"github.com/coffe/quicktube2/internal/ui"
)

// App holds the run-wide state threaded through every menu and dispatcher.
type App struct {
	Session     *model.Session
	ConfigPath  string
	NoClipboard bool
}

// Menu labels shared between the main and post-action menus.
const (
	menuPaste   = "Paste link"
	menuNewLink = "New link"
	menuUpdate  = "Update tools"
	menuCookies = "Select cookie browser"
	menuSave    = "Save settings"
	menuExit    = "Exit"
)

// Run loops until the user exits via the menu or cancels at the top level.
func (a *App) Run() error {
	suppressPrefill := false
	for {
		prefill := ""
		if !suppressPrefill && !a.NoClipboard {
			if text := clipboard.Read(); classify.IsSupported(text) {
				prefill = text
			}
		}
		suppressPrefill = false

		url, quit := a.pickURL(prefill)
		if quit {
			return nil
		}
		if url == "" {
			url, quit = a.mainMenu()
			if quit {
				return nil
			}
			if url == "" {
				continue
			}
		}

		outcome := a.dispatch(url)
		session.Logf("action finished: %s (%s)", outcome, classify.Classify(url))
		suppressPrefill = outcome.SuppressesPrefill()

		fmt.Println()
		if a.postActionMenu() {
			return nil
		}
	}
}

// pickURL resolves this iteration's URL. An empty URL with quit=false sends
// the caller to the main menu.
func (a *App) pickURL(prefill string) (url string, quit bool) {
	if prefill == "" {
		typed, err := ui.Input("Paste/type a URL (leave empty for menu)", "")
		if err != nil {
			return "", true
		}
		return strings.TrimSpace(typed), false
	}

	display := ui.TruncateWithEllipsis(prefill, 50)
	choices := []string{"Use link: " + display, "Paste/type another URL", "Main menu"}
	idx, _, err := ui.Select("Clipboard link detected", choices)
	if err != nil {
		return "", true
	}
	switch idx {
	case 0:
		return prefill, false
	case 1:
		typed, err := ui.Input("Paste/type a URL", "")
		if err != nil {
			return "", true
		}
		return strings.TrimSpace(typed), false
	default:
		return "", false
	}
}

func (a *App) mainMenu() (url string, quit bool) {
	_, choice, err := ui.Select("Main menu",
		[]string{menuPaste, menuUpdate, menuCookies, menuSave, menuExit})
	if err != nil || choice == menuExit {
		return "", true
	}
	switch choice {
	case menuUpdate:
		a.updateTools()
	case menuCookies:
		a.selectCookieBrowser()
	case menuSave:
		a.saveSettings()
	case menuPaste:
		typed, err := ui.Input("Paste/type a URL", "")
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(typed), false
	}
	return "", false
}

func (a *App) postActionMenu() (quit bool) {
	_, choice, err := ui.Select("What next?",
		[]string{menuNewLink, menuUpdate, menuCookies, menuExit})
	if err != nil || choice == menuExit {
		return true
	}
	switch choice {
	case menuUpdate:
		a.updateTools()
	case menuCookies:
		a.selectCookieBrowser()
	}
	return false
}

// dispatch routes by site. Unknown URLs go to the yt-dlp handler, which
// supports far more sites than the classifier whitelists for the clipboard.
func (a *App) dispatch(url string) model.Outcome {
	if classify.Classify(url) == model.SiteSVTPlay {
		return a.handleSVTPlay(url)
	}
	return a.handleYouTube(url)
}

// runTool runs one external download command to completion and maps its
// exit code onto an outcome.
func (a *App) runTool(name string, args []string) model.Outcome {
	code, err := runner.Run(name, args...)
	if err != nil {
		ui.PrintError(name + " could not be started: " + err.Error())
		return model.OutcomeFailed
	}
	if code != 0 {
		ui.PrintError("Download failed.")
		return model.OutcomeFailed
	}
	ui.PrintSuccess("Download complete.")
	return model.OutcomeDownloaded
}
