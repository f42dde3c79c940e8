// Package ai wraps the external generative API behind the ContentGenerator
// interface so the scheduling core can be exercised without network access.
// The real implementation talks to the Google Gemini REST API; tests use the
// mock.
package ai

import (
	"context"
	"errors"
)

// ErrGeneration marks failures of the generative backend. Callers surface it
// to the user and keep the draft in progress so the request can be retried or
// the copy written by hand.
var ErrGeneration = errors.New("content generation failed")

// ContentGenerator produces marketing copy, enhanced imagery, and video for a
// post draft. All calls are single-shot; cancellation is ctx only.
type ContentGenerator interface {
	// GenerateCopy writes post body text for the platform from the given
	// keywords, optionally grounded in a project factsheet.
	GenerateCopy(ctx context.Context, prompt, platform, factsheet string) (string, error)

	// EnhanceImage applies an editing instruction to a source image and
	// returns the resulting bytes and content type.
	EnhanceImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error)

	// GenerateVideo renders a promotional clip from a prompt, optionally
	// seeded with a source asset URL, and returns the video URL.
	GenerateVideo(ctx context.Context, prompt, sourceAssetURL string) (string, error)
}

func platformInstruction(platform string) string {
	switch platform {
	case "facebook", "instagram":
		return "The post should be engaging, use emojis, and include relevant hashtags. The tone should be aspirational and exciting."
	case "linkedin":
		return "The post must be professional and data-driven. Focus on investment potential and market trends. Avoid emojis and maintain a formal tone."
	case "youtube":
		return "This is for a video description. It should be detailed and SEO-friendly. Include a summary, placeholder for key timestamps (e.g., 00:00 Introduction), and a call to action. Use relevant keywords."
	case "twitter":
		return "The post must fit a short-form feed: punchy, under 280 characters, one or two hashtags at most."
	default:
		return "The post should be well-written and engaging."
	}
}
