package domain

import (
	"strings"
	"testing"
)

func TestSnippet(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		max      int
		expected string
	}{
		{
			name:     "shorter than limit is unmodified",
			body:     "1\n00:00:01,000 --> 00:00:02,000\nhello",
			max:      150,
			expected: "1\n00:00:01,000 --> 00:00:02,000\nhello",
		},
		{
			name:     "exactly at limit is unmodified",
			body:     strings.Repeat("a", 150),
			max:      150,
			expected: strings.Repeat("a", 150),
		},
		{
			name:     "one over limit is truncated with marker",
			body:     strings.Repeat("a", 151),
			max:      150,
			expected: strings.Repeat("a", 150) + "...",
		},
		{
			name:     "empty body",
			body:     "",
			max:      150,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snippet(tt.body, tt.max)
			if got != tt.expected {
				t.Errorf("Snippet() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSnippetCountsRunesNotBytes(t *testing.T) {
	body := strings.Repeat("界", 6)
	got := Snippet(body, 5)
	want := strings.Repeat("界", 5) + "..."
	if got != want {
		t.Errorf("Snippet() = %q, want %q", got, want)
	}
}

func TestNewSubtitleRequest(t *testing.T) {
	req := NewSubtitleRequest("dQw4w9WgXcQ")
	if req.YouTubeID != "dQw4w9WgXcQ" {
		t.Errorf("YouTubeID = %q, want %q", req.YouTubeID, "dQw4w9WgXcQ")
	}
	if req.FetchOnly {
		t.Error("FetchOnly should default to false")
	}
}

func TestHTTPFailure(t *testing.T) {
	result := HTTPFailure("abc123", 500, "internal error")
	if result.OK {
		t.Error("HTTP failure should not be OK")
	}
	if result.Failure != FailureKindHTTP {
		t.Errorf("Failure = %q, want %q", result.Failure, FailureKindHTTP)
	}
	if result.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", result.StatusCode)
	}
	if result.Reason != "status 500" {
		t.Errorf("Reason = %q, want %q", result.Reason, "status 500")
	}
}

func TestSuccessEmptyBody(t *testing.T) {
	result := Success("abc123", "")
	if !result.OK {
		t.Error("Success should be OK")
	}
	if result.Body != "" {
		t.Errorf("Body = %q, want empty", result.Body)
	}
}
