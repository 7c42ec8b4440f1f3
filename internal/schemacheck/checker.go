// Package schemacheck checks the structure of rendered loot tables against
// embedded JSON Schemas. It does not judge whether identifiers exist in the
// game or whether parameters make sense for a given condition or function.
package schemacheck

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reoring/lootgen/document"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const rootSchema = "loot_table.json"

// Checker validates documents against the loot table schema. It is safe for
// concurrent use.
type Checker struct {
	schema *jsonschema.Schema
	lang   language.Tag
}

// New compiles the embedded schemas.
func New() (*Checker, error) {
	c := jsonschema.NewCompiler()
	err := fs.WalkDir(schemaFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := schemaFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded schema %s: %w", path, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("parse embedded schema %s: %w", path, err)
		}
		id := strings.TrimPrefix(path, "schemas/")
		if err := c.AddResource(id, doc); err != nil {
			return fmt.Errorf("add schema resource %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("schemacheck: load embedded schemas: %w", err)
	}
	schema, err := c.Compile(rootSchema)
	if err != nil {
		return nil, fmt.Errorf("schemacheck: compile %s: %w", rootSchema, err)
	}
	return &Checker{schema: schema, lang: language.English}, nil
}

// CheckJSON parses data and checks the result. Malformed JSON and duplicate
// keys are reported as issues.
func (c *Checker) CheckJSON(data []byte) error {
	v, err := document.Parse(data)
	if err != nil {
		var dup *document.DuplicateKeyError
		if errors.As(err, &dup) {
			return Issues{{Path: dup.Path, Code: CodeDuplicateKey, Message: err.Error()}}
		}
		return Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	return c.Check(v)
}

// Check validates v. It returns nil or Issues listing every leaf failure.
func (c *Checker) Check(v document.Value) error {
	data, err := document.Marshal(v)
	if err != nil {
		return fmt.Errorf("schemacheck: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("schemacheck: %w", err)
	}
	err = c.schema.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	iss := collect(message.NewPrinter(c.lang), ve, nil)
	slices.SortStableFunc(iss, func(a, b Issue) int { return strings.Compare(a.Path, b.Path) })
	return iss
}

func collect(p *message.Printer, ve *jsonschema.ValidationError, dst Issues) Issues {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			dst = collect(p, cause, dst)
		}
		return dst
	}
	return append(dst, Issue{
		Path:    pointer(ve.InstanceLocation),
		Code:    codeFor(ve.ErrorKind.KeywordPath()),
		Message: ve.ErrorKind.LocalizedString(p),
	})
}

func codeFor(keywordPath []string) string {
	if len(keywordPath) == 0 {
		return CodeNoMatch
	}
	switch kw := keywordPath[len(keywordPath)-1]; kw {
	case "type":
		return CodeInvalidType
	case "required":
		return CodeRequired
	case "additionalProperties", "unevaluatedProperties":
		return CodeUnknownKey
	case "minimum", "exclusiveMinimum", "minItems", "minLength":
		return CodeTooSmall
	case "maximum", "exclusiveMaximum", "maxItems", "maxLength":
		return CodeTooBig
	case "pattern":
		return CodePattern
	case "enum", "const":
		return CodeInvalidEnum
	case "oneOf", "anyOf":
		return CodeNoMatch
	default:
		return kw
	}
}

func pointer(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(p))
	}
	return b.String()
}
