package svtplay

import (
	"reflect"
	"testing"
)

func TestCommandArgs(t *testing.T) {
	const url = "https://www.svtplay.se/video/12345"

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{name: "download", got: DownloadArgs(url), want: []string{"-S", "-M", url}},
		{name: "series", got: SeriesArgs(url), want: []string{"-S", "-M", "-A", url}},
		{name: "last episodes", got: LastEpisodesArgs("5", url), want: []string{"-S", "-M", "-A", "--all-last", "5", url}},
		{name: "audio only", got: AudioOnlyArgs(url), want: []string{"--only-audio", url}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
