// export_test.go exports private functions for white-box testing.
package logger

// Exported aliases of the private error formatting functions for testing.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
