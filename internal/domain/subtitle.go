package domain

// Identifier is the opaque token (a YouTube video ID) driving one fetch.
type Identifier string

func (i Identifier) String() string {
	return string(i)
}

// SubtitleRequest is the JSON payload sent to the provider webhook.
type SubtitleRequest struct {
	YouTubeID string `json:"youtube_id"`
	FetchOnly bool   `json:"fetch_only"`
}

// NewSubtitleRequest builds the request payload for one identifier.
func NewSubtitleRequest(id Identifier) SubtitleRequest {
	return SubtitleRequest{
		YouTubeID: id.String(),
		FetchOnly: false,
	}
}
