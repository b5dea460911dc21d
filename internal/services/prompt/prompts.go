package prompt

// Prompts sent with every analysis request.
const (
	// ImageAnalysisPrompt guides the model when an inspection photo is attached.
	ImageAnalysisPrompt = "Please analyze the given image along with any provided text context (if any) and provide an analysis of any deficiencies or conditions, safety concerns, functionality issues, etc."

	// DefectAnalysisPrompt guides the model when only a written defect comment is given.
	DefectAnalysisPrompt = "Please analyze the given deficiency comment and provide a more detailed breakdown of the comment to allow for better understanding."
)
