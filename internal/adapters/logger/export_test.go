package logger

// Exported for white-box testing of error rendering.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
