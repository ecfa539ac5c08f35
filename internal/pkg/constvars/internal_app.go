package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

const (
	URLParamQuestionnaireID = "questionnaireID"
	URLParamBatteryID       = "batteryID"
)

const (
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionBatteries      = "batteries"

	RedisKeyCompiledDefinitionPrefix = "definition:compiled:"
	RedisKeyRejectedDefinitionPrefix = "definition:rejected:"
)

const (
	BatteryScoredEventType = "battery.scored"
	BatchImportedEventType = "battery.batch_imported"
)
