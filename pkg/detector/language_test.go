package detector

import "testing"

func TestDetect(t *testing.T) {
	d := NewLanguageDetector()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "english",
			text:   "The quick brown fox jumps over the lazy dog while the children watch from the window.",
			want:   "english",
			wantOK: true,
		},
		{
			name:   "french",
			text:   "Le renard brun rapide saute par-dessus le chien paresseux pendant que les enfants regardent.",
			want:   "french",
			wantOK: true,
		},
		{
			name:   "german",
			text:   "Der schnelle braune Fuchs springt über den faulen Hund, während die Kinder zuschauen.",
			want:   "german",
			wantOK: true,
		},
		{name: "empty", text: "", wantOK: false},
		{name: "blank", text: " \n\t", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
