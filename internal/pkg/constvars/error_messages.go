package constvars

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "we cannot process your request, please check your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientDefinitionRejected            = "the questionnaire definition is invalid and was rejected"
	ErrClientInvalidAnswer                 = "one of the answers does not match the questionnaire definition"
	ErrClientQuestionnaireNotFound         = "questionnaire not found"
	ErrClientBatteryNotFound               = "battery not found"
)

// Developer-facing messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON body"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "URL param '%s' validation failed"

	ErrDevUnknownScoringMethod  = "unknown scoring method '%s' on question '%s'"
	ErrDevUnknownResponseKind   = "unknown response kind '%s' on question '%s'"
	ErrDevForwardVisibilityRule = "visibility rule of session '%s' references question '%s' that is not in an earlier session"
	ErrDevUnknownRuleOperator   = "unknown rule operator '%s' in visibility rule of session '%s'"
	ErrDevDuplicateSessionOrder = "duplicate session order %d in questionnaire '%s'"
	ErrDevMixedScoringMethods   = "session '%s' mixes more than one scoring method"

	ErrDevInvalidAnswerReference = "answer references choice '%s' that does not belong to question '%s'"
	ErrDevUnknownAnswerQuestion  = "answer references question '%s' that is not in the definition"
	ErrDevQuestionnaireNotFound  = "questionnaire '%s' does not exist"
	ErrDevBatteryNotFound        = "battery '%s' does not exist"

	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToUpdateDocument = "failed to update document"
	ErrDevDBFailedToDeleteDocument = "failed to delete document"

	ErrDevRedisFailedToSetData    = "failed to set data to redis"
	ErrDevRedisFailedToGetData    = "failed to get data from redis with key: %s"
	ErrDevRedisFailedToDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQFailedToPublish = "failed to publish message to rabbitmq"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"dive":     "contains an invalid element",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}
