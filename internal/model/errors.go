package model

import "errors"

// Sentinel errors shared across packages.
var (
	// ErrPromptCancelled is returned when the user backs out of a prompt
	// (ctrl-c / EOF). Callers unwind one menu level instead of reporting.
	ErrPromptCancelled = errors.New("prompt cancelled")
	// ErrNoMetadata is returned when yt-dlp could not produce any
	// information for a URL.
	ErrNoMetadata = errors.New("could not retrieve information for the URL")
	// ErrUnparseableMetadata is returned when yt-dlp's output could not be
	// decoded.
	ErrUnparseableMetadata = errors.New("could not parse video information")
)
