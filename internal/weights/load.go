package weights

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed default_weights.yaml
var defaultWeights []byte

//go:embed schema.json
var schema string

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every schema violation found in a weight table document.
type SchemaError struct {
	Source string
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "weight table %s failed schema validation:", e.Source)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// Load reads a weight table file. Any format viper understands works
// (yaml, json, toml); the document needs a top-level "weights" list.
func Load(path string) (*Table, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading weight table %q: %w", path, err)
	}

	return decode(path, v.AllSettings())
}

// Default returns the built-in weight table.
func Default() *Table {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultWeights)); err != nil {
		panic(fmt.Sprintf("embedded weight table: %v", err))
	}

	t, err := decode("<embedded>", v.AllSettings())
	if err != nil {
		panic(fmt.Sprintf("embedded weight table: %v", err))
	}
	return t
}

func decode(source string, doc map[string]any) (*Table, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validating weight table %s: %w", source, err)
	}

	if !result.Valid() {
		schemaErr := &SchemaError{Source: source}
		for _, re := range result.Errors() {
			schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: re.Field(), Message: re.Description()})
		}
		return nil, schemaErr
	}

	var raw struct {
		Weights []Entry `mapstructure:"weights"`
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding weight table %s: %w", source, err)
	}

	t, err := New(raw.Weights)
	if err != nil {
		return nil, fmt.Errorf("weight table %s: %w", source, err)
	}
	return t, nil
}
