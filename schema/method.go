package schema

// LatestProtocolVersion is the protocol revision advertised on initialize.
const LatestProtocolVersion = "2024-11-05"

const (
	MethodInitialize    = "initialize"
	MethodPing          = "ping"
	MethodToolsList     = "tools/list"
	MethodToolsCall     = "tools/call"
	MethodPromptsList   = "prompts/list"
	MethodResourcesList = "resources/list"

	MethodNotificationInitialized = "notifications/initialized"
	MethodNotificationCancel      = "notifications/cancelled"
)
