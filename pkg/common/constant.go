package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyConfigPath string = "COLDTRACK_CONFIG"

	EnvKeyDBType string = "COLDTRACK_DB_TYPE"
	EnvKeyDbPath string = "COLDTRACK_DB_PATH"

	EnvKeyHttpHostPort string = "COLDTRACK_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "COLDTRACK_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "COLDTRACK_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "COLDTRACK_DEFAULT_BURST"

	EnvKeyBackendURL        string = "COLDTRACK_BACKEND_URL"
	EnvKeyBackendTimeout    string = "COLDTRACK_BACKEND_TIMEOUT"
	EnvKeyBackendRetries    string = "COLDTRACK_BACKEND_RETRIES"
	EnvKeyBackendBackoffMin string = "COLDTRACK_BACKEND_BACKOFF_MIN"
	EnvKeyBackendBackoffMax string = "COLDTRACK_BACKEND_BACKOFF_MAX"

	EnvKeyMQTTBroker      string = "COLDTRACK_MQTT_BROKER"
	EnvKeyMQTTClientID    string = "COLDTRACK_MQTT_CLIENT_ID"
	EnvKeyMQTTUsername    string = "COLDTRACK_MQTT_USERNAME"
	EnvKeyMQTTPassword    string = "COLDTRACK_MQTT_PASSWORD"
	EnvKeyFeedTopicPrefix string = "COLDTRACK_FEED_TOPIC_PREFIX"
	EnvKeyDisplayTimezone string = "COLDTRACK_DISPLAY_TZ"

	EnvKeyReportDir      string = "COLDTRACK_REPORT_DIR"
	EnvKeyReportEvery    string = "COLDTRACK_REPORT_EVERY"
	EnvKeyReportLookback string = "COLDTRACK_REPORT_LOOKBACK_DAYS"

	// durable selection keys, shared with the web dashboard's local storage
	PreferenceKeyBranch string = "selectedSucursalId"
	PreferenceKeySensor string = "selectedCamaraId"

	LoggerNameRealtime      string = "realtime"
	LoggerNameAnalytics     string = "analytics"
	LoggerNameReport        string = "report"
	LoggerNameBackend       string = "backend"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameScheduler     string = "scheduler"

	LoggerFieldCategory       string = "category"
	LoggerCategoryFeed        string = "feed"
	LoggerCategoryHistory     string = "history"
	LoggerCategorySelection   string = "selection"
	LoggerCategoryQuery       string = "query"
	LoggerCategorySession     string = "session"
	LoggerCategoryPreferences string = "preferences"
)
