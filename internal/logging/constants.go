package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldPages      = "pages"
	FieldRows       = "rows"
	FieldCount      = "count"
	FieldAddr       = "addr"
	FieldRequestID  = "request_id"
	FieldDuration   = "duration_ms"
)
