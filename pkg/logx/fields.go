package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldChatID          = "chat-id"
	FieldCohort          = "cohort"
	FieldColumns         = "columns"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldGroups          = "groups"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSeed            = "seed"
	FieldStack           = "stack"
	FieldStudent         = "student"
	FieldTask            = "task"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
