package model

import "testing"

func TestOutcomeSuppressesPrefill(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{OutcomeStreamed, true},
		{OutcomeDownloaded, false},
		{OutcomeFailed, false},
		{OutcomeCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.outcome.SuppressesPrefill(); got != tt.want {
			t.Fatalf("%v.SuppressesPrefill() = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestFormatAudioAndVideoFlags(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		hasVideo bool
		hasAudio bool
	}{
		{name: "muxed", format: Format{Vcodec: "avc1", Acodec: "mp4a.40.2"}, hasVideo: true, hasAudio: true},
		{name: "video only", format: Format{Vcodec: "vp9", Acodec: "none"}, hasVideo: true, hasAudio: false},
		{name: "audio only", format: Format{Vcodec: "none", Acodec: "opus"}, hasVideo: false, hasAudio: true},
		// yt-dlp reports null codecs for some extractors; only an explicit
		// "none" means the track is absent.
		{name: "codecs absent", format: Format{}, hasVideo: true, hasAudio: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.HasVideo(); got != tt.hasVideo {
				t.Fatalf("HasVideo() = %v, want %v", got, tt.hasVideo)
			}
			if got := tt.format.HasAudio(); got != tt.hasAudio {
				t.Fatalf("HasAudio() = %v, want %v", got, tt.hasAudio)
			}
		})
	}
}

func TestFormatSizeFallback(t *testing.T) {
	if got := (Format{Filesize: 100, FilesizeApprox: 200}).Size(); got != 100 {
		t.Fatalf("exact size must win, got %d", got)
	}
	if got := (Format{FilesizeApprox: 200}).Size(); got != 200 {
		t.Fatalf("approximate size fallback, got %d", got)
	}
	if got := (Format{}).Size(); got != 0 {
		t.Fatalf("unknown size must be 0, got %d", got)
	}
}
