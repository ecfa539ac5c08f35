package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Questionnaire messages
	CreateQuestionnaireSuccessMessage = "questionnaire created successfully"
	UpdateQuestionnaireSuccessMessage = "questionnaire updated successfully"
	FindQuestionnaireSuccessMessage   = "questionnaire retrieved successfully"
	DeleteQuestionnaireSuccessMessage = "questionnaire deleted successfully"

	// Battery messages
	CreateBatterySuccessMessage     = "battery created successfully"
	FindBatterySuccessMessage       = "battery retrieved successfully"
	AnswerBatterySuccessMessage     = "answers recorded successfully"
	ScoreBatterySuccessMessage      = "battery scored successfully"
	CompletionCheckSuccessMessage   = "completion checked successfully"
	ImportBatchSuccessMessage       = "batch imported successfully"
	ImportBatchRejectedMessage      = "batch rejected, one or more batteries are invalid"
	ActiveSetEvaluateSuccessMessage = "active set evaluated successfully"
)
