package serializers

// Serializer renders a value to a configured destination. Implementations
// cover the output formats the CLI and API support (JSON, YAML, table).
type Serializer interface {
	Serialize(v any) error
}
