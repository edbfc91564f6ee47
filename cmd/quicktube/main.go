package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/coffe/quicktube2/internal/app"
	"github.com/coffe/quicktube2/internal/config"
	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/session"
	"github.com/coffe/quicktube2/internal/tools"
	"github.com/coffe/quicktube2/internal/ui"
)

func main() {
	var args model.Args
	arg.MustParse(&args)

	scriptDir, err := tools.ScriptDir()
	if err != nil {
		scriptDir = "."
	}
	session.Init(scriptDir)

	defer func() {
		if r := recover(); r != nil {
			session.Errorf("critical error: %v", r)
			ui.PrintError(fmt.Sprintf("Critical error: %v", r))
			fmt.Print("Press Enter to exit...")
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
			os.Exit(1)
		}
	}()

	// Self-updated tools shadow system ones for this run and its children.
	tools.PrependPath(tools.UserBinDir())

	cfgPath := args.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		ui.PrintWarning("Ignoring unreadable config: " + err.Error())
		cfg = &model.Config{}
	}

	ses := &model.Session{
		CookieBrowser: cfg.CookieBrowser,
		OutPath:       cfg.OutPath,
	}
	if args.CookieBrowser != "" {
		ses.CookieBrowser = args.CookieBrowser
	}

	if !args.SkipDepCheck {
		warnMissingDeps()
	}

	a := &app.App{
		Session:     ses,
		ConfigPath:  cfgPath,
		NoClipboard: args.NoClipboard,
	}
	if err := a.Run(); err != nil {
		session.Errorf("loop ended: %v", err)
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	ui.PrintDim("Exiting...")
}

func warnMissingDeps() {
	missing := tools.Missing()
	if len(missing) == 0 {
		return
	}
	ui.PrintWarning("The following external dependencies are missing from PATH:")
	ui.PrintList(missing, ui.ColorRed)
	ui.PrintDim("Some features might not work.")
	if tools.AnyCritical(missing) {
		ui.PrintError("'mpv' and 'ffmpeg' are required for playback and merging.")
	}
}
