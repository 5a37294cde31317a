// Package schema validates game table files against their typed shapes.
//
// A schema decodes well-formed JSON into the table's Go type from
// pkg/gamedata/raw and then evaluates the type's validate struct tags with
// github.com/go-playground/validator/v10. Keys the Go type does not model
// are dropped during decoding.
//
// Usage:
//
//	schemas := schema.Tables()
//	table, err := schemas.Operator.Validate(data)
//
// Errors from the validator keep their concrete type, so callers can use
// errors.As with validator.ValidationErrors to inspect individual fields.
package schema
