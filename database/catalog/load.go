package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shashiranjanraj/rentaldeploy/pkg/storage"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the format from a file extension, defaulting to YAML.
func FormatOf(p string) Format {
	if strings.EqualFold(path.Ext(p), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes and validates a catalog. Unknown fields are rejected so a
// typo in a key does not silently drop data.
func Parse(data []byte, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("catalog: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("catalog: decode yaml: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("catalog: unknown format %q", format)
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Load reads and parses the catalog at p on disk.
func Load(ctx context.Context, disk storage.Disk, p string) (Catalog, error) {
	data, err := disk.Get(ctx, p)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: load %s: %w", p, err)
	}
	return Parse(data, FormatOf(p))
}
