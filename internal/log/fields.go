package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldErrorKind = "error_kind"
	FieldSheet     = "sheet"
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldCommand   = "command"
	FieldLine      = "line"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentConfig = "config"
	ComponentShell  = "shell"
	ComponentSheets = "sheets"
	ComponentDemo   = "demo"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpRender   = "render"
	OpExport   = "export"
	OpParse    = "parse"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
