package transcript

import "testing"

func TestSelectTrack(t *testing.T) {
	tests := []struct {
		name     string
		langs    []string
		target   string
		want     string
		wantNone bool
	}{
		{"exact english", []string{"fr", "en", "de"}, "en", "en", false},
		{"english variant", []string{"fr", "en-US", "de"}, "en", "en-US", false},
		{"no english falls back to first", []string{"fr", "de"}, "en", "fr", false},
		{"single track", []string{"ja"}, "en", "ja", false},
		{"other target language", []string{"en", "fr-CA"}, "fr", "fr-CA", false},
		{"empty", nil, "en", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks := make([]Track, 0, len(tt.langs))
			for _, l := range tt.langs {
				tracks = append(tracks, Track{LanguageCode: l})
			}
			got, ok := SelectTrack(tracks, tt.target)
			if ok == tt.wantNone {
				t.Fatalf("SelectTrack() ok = %v, want %v", ok, !tt.wantNone)
			}
			if !tt.wantNone && got.LanguageCode != tt.want {
				t.Errorf("SelectTrack() = %q, want %q", got.LanguageCode, tt.want)
			}
		})
	}
}
