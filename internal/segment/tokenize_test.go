package segment

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple words lowercased",
			text: "Hallo Welt",
			want: []string{"hallo", "welt"},
		},
		{
			name: "umlauts and eszett kept",
			text: "Straße schön über",
			want: []string{"straße", "schön", "über"},
		},
		{
			name: "punctuation and digits dropped",
			text: "Es kostet 42 Euro, oder?",
			want: []string{"es", "kostet", "euro", "oder"},
		},
		{
			name: "hyphenated compound kept",
			text: "E-Mail-Adresse",
			want: []string{"e-mail-adresse"},
		},
		{
			name: "line-break hyphens stripped",
			text: "Wörter- -buch",
			want: []string{"wörter", "buch"},
		},
		{
			name: "single letters dropped",
			text: "a b ab",
			want: []string{"ab"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Words(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
