package trim

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an options document.
type Format string

// Supported options document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a format name or file extension ("json", ".yml",
// "TOML") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOptions, name)
	}
}

type optionField int

const (
	fieldSuffix optionField = iota
	fieldWholeWords
	fieldPunctuation
)

// optionKeys maps accepted document keys to Options fields. Both the
// snake_case tag names and the camelCase record names are accepted.
var optionKeys = map[string]optionField{
	"suffix":               fieldSuffix,
	"preserve_whole_words": fieldWholeWords,
	"preserveWholeWords":   fieldWholeWords,
	"preserve_punctuation": fieldPunctuation,
	"preservePunctuation":  fieldPunctuation,
}

// DecodeOptions decodes an options record from data.
//
// Unknown keys are ignored and logged at debug level. Null values leave the
// field unset. A value of the wrong type, a malformed document or an unknown
// format returns an error wrapping ErrInvalidOptions.
func DecodeOptions(data []byte, format Format) (*Options, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	// Sorted so that type errors and logs are reported in a stable order.
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := &Options{}
	for _, key := range keys {
		value := doc[key]
		field, known := optionKeys[key]
		if !known {
			slog.Debug("ignoring unknown trim option",
				slog.String("key", key),
				slog.String("format", string(format)))
			continue
		}
		if value == nil {
			continue
		}

		switch field {
		case fieldSuffix:
			s, ok := value.(string)
			if !ok {
				return nil, wrongType(key, "string", value)
			}
			opts.Suffix = String(s)
		case fieldWholeWords:
			b, ok := value.(bool)
			if !ok {
				return nil, wrongType(key, "boolean", value)
			}
			opts.PreserveWholeWords = Bool(b)
		case fieldPunctuation:
			b, ok := value.(bool)
			if !ok {
				return nil, wrongType(key, "boolean", value)
			}
			opts.PreservePunctuation = Bool(b)
		}
	}

	return opts, nil
}

func decodeDocument(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidOptions, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidOptions, format, err)
	}
	return doc, nil
}

func wrongType(key, want string, got any) error {
	return fmt.Errorf("%w: %s must be a %s, got %T", ErrInvalidOptions, key, want, got)
}

// OptionsSchema returns the JSON Schema of an options document.
// Additional properties are allowed because DecodeOptions ignores them.
func OptionsSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}
	return r.Reflect(&Options{})
}
