package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldCallbackData   = "callback-data"
	FieldChatID         = "chat-id"
	FieldCommand        = "command"
	FieldDealID         = "deal-id"
	FieldDurationMs     = "duration-ms"
	FieldEpoch          = "epoch"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldPage           = "page"
	FieldQuery          = "query"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldStack          = "stack"
	FieldStoreID        = "store-id"
	FieldTraceID        = "trace-id"
	FieldUpdate         = "update"
	FieldUpdateID       = "update-id"
)
