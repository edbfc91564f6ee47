// Package player hands URLs to mpv. Streaming outcomes never depend on the
// player's exit code - closing the window mid-stream is not a failure.
package player

import (
	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/runner"
	"github.com/coffe/quicktube2/internal/ui"
)

// Tool is the external player binary name.
const Tool = "mpv"

// Stream plays the URL in mpv's own window, detached from the terminal.
func Stream(url string) model.Outcome {
	return run("--no-terminal", url)
}

// StreamAudio plays the audio track only, in the terminal.
func StreamAudio(url string) model.Outcome {
	return run("--no-video", url)
}

func run(args ...string) model.Outcome {
	if _, err := runner.Run(Tool, args...); err != nil {
		ui.PrintError("mpv could not be started: " + err.Error())
	}
	return model.OutcomeStreamed
}
