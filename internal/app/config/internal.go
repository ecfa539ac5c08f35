package config

type InternalConfig struct {
	App      App
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	// CompiledDefinitionCacheTTLInMinutes bounds how long a validated (or
	// rejected) questionnaire definition is served from Redis before it is
	// re-validated against storage.
	CompiledDefinitionCacheTTLInMinutes int
	// BatchImportWorkers caps concurrent scoring goroutines during a batch
	// import.
	BatchImportWorkers int
}

type AppRabbitMQ struct {
	ScoredEventQueue string
}
