package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and easy to filter.
const (
	FieldFile      = "file_path"
	FieldLine      = "line"
	FieldCount     = "count"
	FieldDelimiter = "delimiter"
	FieldMonth     = "month"
	FieldCategory  = "category"
	FieldGroup     = "group"
	FieldAddr      = "addr"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)
