package ai

import "context"

// Mock is a canned ContentGenerator for tests and offline development.
// Set Err to make every call fail with it.
type Mock struct {
	Copy     string
	Image    []byte
	ImageCT  string
	VideoURL string
	Err      error

	CopyCalls  int
	VideoCalls int
}

func (m *Mock) GenerateCopy(ctx context.Context, prompt, platform, factsheet string) (string, error) {
	m.CopyCalls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Copy, nil
}

func (m *Mock) EnhanceImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	if m.Err != nil {
		return nil, "", m.Err
	}
	ct := m.ImageCT
	if ct == "" {
		ct = "image/jpeg"
	}
	return m.Image, ct, nil
}

func (m *Mock) GenerateVideo(ctx context.Context, prompt, sourceAssetURL string) (string, error) {
	m.VideoCalls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.VideoURL, nil
}
