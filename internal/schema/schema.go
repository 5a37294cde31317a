package schema

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	"github.com/vvka-141/gamedata/pkg/gamedata"
	"github.com/vvka-141/gamedata/pkg/gamedata/raw"
)

// ErrNull is returned for a file whose whole content is JSON null.
var ErrNull = errors.New("table is null")

var (
	sharedOnce     sync.Once
	sharedValidate *validator.Validate
)

// Validator returns the process-wide validator used by Tables.
// Field names in its errors are the JSON keys.
func Validator() *validator.Validate {
	sharedOnce.Do(func() {
		sharedValidate = NewValidator()
	})
	return sharedValidate
}

// NewValidator creates a validator that reports fields by their JSON key.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates table content by decoding it into T and checking T's
// validate tags. Struct-typed tables are checked field by field; map and
// slice tables have every element checked.
//
// Safe for concurrent use.
type Struct[T any] struct {
	validate *validator.Validate
}

// New creates a schema for T. A nil v uses the shared validator.
func New[T any](v *validator.Validate) *Struct[T] {
	if v == nil {
		v = Validator()
	}
	return &Struct[T]{validate: v}
}

// Validate implements gamedata.Schema.
func (s *Struct[T]) Validate(data []byte) (T, error) {
	var zero T

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return zero, ErrNull
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("decode: %w", err)
	}

	if err := s.check(value); err != nil {
		return zero, err
	}
	return value, nil
}

func (s *Struct[T]) check(value T) error {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrNull
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return s.validate.Struct(rv.Interface())
	case reflect.Map, reflect.Slice, reflect.Array:
		return s.validate.Var(rv.Interface(), "dive")
	default:
		return nil
	}
}

// TableSchemas bundles the schema of every table kind.
type TableSchemas struct {
	Operator    gamedata.Schema[raw.CharacterTable]
	Outfit      gamedata.Schema[raw.SkinTable]
	Range       gamedata.Schema[raw.RangeTable]
	Skill       gamedata.Schema[raw.SkillTable]
	UniEquip    gamedata.Schema[raw.UniEquipTable]
	BattleEquip gamedata.Schema[raw.BattleEquipTable]
}

// Tables returns the schemas for the six game tables, sharing one validator.
func Tables() TableSchemas {
	v := Validator()
	return TableSchemas{
		Operator:    New[raw.CharacterTable](v),
		Outfit:      New[raw.SkinTable](v),
		Range:       New[raw.RangeTable](v),
		Skill:       New[raw.SkillTable](v),
		UniEquip:    New[raw.UniEquipTable](v),
		BattleEquip: New[raw.BattleEquipTable](v),
	}
}

// Traits returns the schema for a trait translation file: a flat object of
// trait key to text.
func Traits() gamedata.Schema[map[string]string] {
	return New[map[string]string](Validator())
}
