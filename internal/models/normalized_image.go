package models

// NormalizedImage is an uploaded photo after bounding and re-encoding, ready
// to embed in an inference request. Lives for a single request only.
type NormalizedImage struct {
	Base64       string
	Width        int
	Height       int
	SourceFormat string
	EncodedSize  int64
}
