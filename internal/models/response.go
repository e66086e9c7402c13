package models

type AnalyzeResponse struct {
	SubmissionID string `json:"submission_id,omitempty"`
	AnalysisResult
}

type SubmissionResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	FileName     string  `json:"original_filename"`
	FileType     string  `json:"file_type"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type SlotStatus struct {
	Slot string `json:"slot"`
	Mode string `json:"mode"`
}
