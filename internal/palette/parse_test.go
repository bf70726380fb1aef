package palette

import (
	"reflect"
	"testing"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bare JSON array",
			text: `["#3498db", "#2ecc71", "#e74c3c"]`,
			want: []string{"#3498db", "#2ecc71", "#e74c3c"},
		},
		{
			name: "JSON array embedded in prose",
			text: "Here is a harmonious palette:\n[\"#3498DB\", \"2ecc71\"]\nEnjoy!",
			want: []string{"#3498db", "#2ecc71"},
		},
		{
			name: "invalid JSON falls back to hex scan",
			text: "colors: [#ff0000, #00ff00] and also #0000FF",
			want: []string{"#ff0000", "#00ff00", "#0000ff"},
		},
		{
			name: "no array at all",
			text: "I would use #abcdef and maybe #123456 for contrast.",
			want: []string{"#abcdef", "#123456"},
		},
		{
			name: "invalid tokens are discarded",
			text: `["#12345", "#1234567", "not-a-color", "#a1b2c3"]`,
			want: []string{"#a1b2c3"},
		},
		{
			name: "no usable colors",
			text: "I cannot help with that.",
			want: []string{},
		},
		{
			name: "empty reply",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseReply(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
