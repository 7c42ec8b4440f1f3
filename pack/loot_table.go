package pack

import (
	"fmt"
	"log/slog"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/document"
)

// Format selects the file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

type options struct {
	format Format
	indent string
	logger *slog.Logger
}

// Option configures AddLootTable.
type Option func(*options)

// WithFormat selects JSON (the default) or YAML output.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != "" {
			o.format = f
		}
	}
}

// WithIndent pretty-prints JSON output with the given indent. An empty
// indent writes compact JSON.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithLogger sets the logger used to report written files. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// LootTablePath maps a table identifier to its location inside a pack, e.g.
// "mod:blocks/ruby_ore" becomes "data/mod/loot_tables/blocks/ruby_ore.json".
func LootTablePath(id lootgen.Identifier, f Format) string {
	return fmt.Sprintf("data/%s/loot_tables/%s.%s", id.Namespace(), id.Path(), f.Ext())
}

// AddLootTable serializes table with a fresh Context, encodes it and stores
// it in w under the path derived from id. It returns that path.
func AddLootTable(w Writer, id lootgen.Identifier, table lootgen.Serializer, opts ...Option) (string, error) {
	o := options{format: FormatJSON, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if id.IsZero() {
		return "", fmt.Errorf("%w: loot table without identifier", ErrInvalidPath)
	}
	v, err := table.Serialize(lootgen.NewContext())
	if err != nil {
		return "", fmt.Errorf("pack: serialize %s: %w", id, err)
	}
	data, err := Encode(v, o.format, o.indent)
	if err != nil {
		return "", fmt.Errorf("pack: encode %s: %w", id, err)
	}
	p := LootTablePath(id, o.format)
	if err := w.Put(p, data); err != nil {
		return "", err
	}
	o.logger.Debug("loot table written", "id", id.String(), "path", p, "bytes", len(data))
	return p, nil
}

// Encode writes v in format f.
func Encode(v document.Value, f Format, indent string) ([]byte, error) {
	switch f {
	case FormatYAML:
		return document.MarshalYAML(v)
	case FormatJSON, "":
		if indent == "" {
			return document.Marshal(v)
		}
		return document.MarshalIndent(v, "", indent)
	}
	return nil, fmt.Errorf("pack: unknown format %q", f)
}
