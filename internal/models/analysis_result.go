package models

type FailureKind string

const (
	FailureImageDecode FailureKind = "image_decode"
	FailureInference   FailureKind = "inference"
)

type Failure struct {
	Kind   FailureKind `json:"kind"`
	Reason string      `json:"reason"`
}

// AnalysisResult carries either the model's analysis text or a failure;
// exactly one of the two is set.
type AnalysisResult struct {
	Text    string   `json:"text,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

func Success(text string) AnalysisResult {
	return AnalysisResult{Text: text}
}

func Failed(kind FailureKind, reason string) AnalysisResult {
	return AnalysisResult{Failure: &Failure{Kind: kind, Reason: reason}}
}

func (r AnalysisResult) OK() bool {
	return r.Failure == nil
}
