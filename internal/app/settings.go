package app

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"

	"github.com/coffe/quicktube2/internal/config"
	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/tools"
	"github.com/coffe/quicktube2/internal/ui"
)

func (a *App) selectCookieBrowser() {
	choices := append([]string{"None (default)"}, model.CookieBrowsers...)
	idx, choice, err := ui.Select("Select browser to borrow cookies from", choices)
	if err != nil {
		return
	}
	if idx == 0 {
		a.Session.CookieBrowser = ""
		ui.PrintWarning("Cookies disabled.")
		return
	}
	a.Session.CookieBrowser = choice
	ui.PrintSuccess("Browser selected: " + choice)
}

func (a *App) saveSettings() {
	cfg := &model.Config{
		CookieBrowser: a.Session.CookieBrowser,
		OutPath:       a.Session.OutPath,
	}
	if err := config.Save(a.ConfigPath, cfg); err != nil {
		ui.PrintError("Could not save settings: " + err.Error())
		return
	}
	ui.PrintSuccess("Settings saved to " + a.ConfigPath)
}

// updateTools fetches the latest yt-dlp and svtplay-dl release binaries
// into the per-OS tool directory. That directory sits in front of PATH, so
// updated tools are picked up by the next external call.
func (a *App) updateTools() {
	binDir := tools.UserBinDir()
	ui.PrintHeader("Update tools")
	ui.PrintDim("Tools will be installed/updated in: " + binDir)

	_, choice, err := ui.Select("Download the latest yt-dlp and svtplay-dl?",
		[]string{"Yes, update", "Cancel"})
	if err != nil || choice != "Yes, update" {
		return
	}
	if err := tools.MakeBinDir(binDir); err != nil {
		ui.PrintError("Could not create directory: " + err.Error())
		return
	}

	ui.PrintDownload("Downloading latest yt-dlp...")
	if n, err := tools.UpdateYtdlp(binDir); err != nil {
		ui.PrintError("Failed to update yt-dlp: " + err.Error())
	} else {
		ui.PrintSuccess(fmt.Sprintf("yt-dlp updated (%s).", humanize.IBytes(uint64(n))))
	}

	if _, ok := tools.SvtplayAsset(runtime.GOOS); ok {
		ui.PrintDownload("Downloading latest svtplay-dl...")
		if n, err := tools.UpdateSvtplay(binDir); err != nil {
			ui.PrintError("Failed to update svtplay-dl: " + err.Error())
		} else {
			ui.PrintSuccess(fmt.Sprintf("svtplay-dl updated (%s).", humanize.IBytes(uint64(n))))
		}
	} else {
		ui.PrintDim("svtplay-dl update on macOS requires manual handling (zip).")
	}

	fmt.Println()
	ui.PrintInfo("Done. Updated tools take effect on the next action.")
}
