package models

type RequestKind string

const (
	KindImageAnalysis  RequestKind = "image_analysis"
	KindDefectAnalysis RequestKind = "defect_analysis"
)

// AnalysisRequest is the outbound inference payload for one user action.
// Built once by the prompt package; not modified afterwards.
type AnalysisRequest struct {
	Kind         RequestKind `json:"kind"`
	Message      string      `json:"message"`
	ImageDataURI string      `json:"image_data_uri,omitempty"`
	MaxTokens    int         `json:"max_tokens"`
}

type DefectAnalysisRequest struct {
	DefectText string `json:"defect_text"`
}
