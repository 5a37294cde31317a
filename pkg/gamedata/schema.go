package gamedata

// Schema validates the raw JSON content of one table file and converts it
// into the table's typed value.
//
// Loaders only hand well-formed JSON to a Schema; a non-nil error means the
// content does not satisfy the table shape. Implementations must be safe
// for concurrent use.
type Schema[T any] interface {
	Validate(raw []byte) (T, error)
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc[T any] func(raw []byte) (T, error)

// Validate calls f(raw).
func (f SchemaFunc[T]) Validate(raw []byte) (T, error) {
	return f(raw)
}
