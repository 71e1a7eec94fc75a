package policy

import "testing"

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{
			name:    "star matches everything",
			pattern: "*",
			input:   "http://example.com/anything?q=1",
			want:    true,
		},
		{
			name:    "domain prefix",
			pattern: "http://a.com/*",
			input:   "http://a.com/x",
			want:    true,
		},
		{
			name:    "domain prefix rejects other host",
			pattern: "http://a.com/*",
			input:   "http://b.com/x",
			want:    false,
		},
		{
			name:    "star matches empty run",
			pattern: "http://a.com/*",
			input:   "http://a.com/",
			want:    true,
		},
		{
			name:    "inner star",
			pattern: "http://*.example.com/index.html",
			input:   "http://cdn.example.com/index.html",
			want:    true,
		},
		{
			name:    "multiple stars",
			pattern: "*://example.com/*/assets/*",
			input:   "https://example.com/v2/assets/app.js",
			want:    true,
		},
		{
			name:    "question mark matches one char",
			pattern: "http://a.com/page?.html",
			input:   "http://a.com/page1.html",
			want:    true,
		},
		{
			name:    "question mark needs a char",
			pattern: "http://a.com/page?.html",
			input:   "http://a.com/page.html",
			want:    false,
		},
		{
			name:    "local scheme",
			pattern: "local://*",
			input:   "local://assets/logo.png",
			want:    true,
		},
		{
			name:    "exact match without wildcards",
			pattern: "http://a.com/x",
			input:   "http://a.com/x",
			want:    true,
		},
		{
			name:    "no match without wildcards",
			pattern: "http://a.com/x",
			input:   "http://a.com/y",
			want:    false,
		},
		{
			name:    "empty pattern only matches empty",
			pattern: "",
			input:   "x",
			want:    false,
		},
		{
			name:    "trailing star after backtrack",
			pattern: "*b*",
			input:   "abc",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchGlob(tt.pattern, tt.input); got != tt.want {
				t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}
