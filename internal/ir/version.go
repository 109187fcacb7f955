package ir

// Version constants for the result schema and engine.
const (
	// SchemaVersion is the result schema version used in digests and the store.
	SchemaVersion = "1"

	// EngineVersion is the basket engine version.
	EngineVersion = "0.1.0"
)
