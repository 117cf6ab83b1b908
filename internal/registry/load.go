package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentic-research/promptgen/api"
)

// Load reads a registry file, decodes it by extension (.hcl, .json,
// .yaml/.yml) and validates it. A registry that fails validation is
// rejected whole — no partially valid record set is ever returned.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var records []api.TopicRecord
	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		records, err = parseHCL(data, path)
	case ".json":
		records, err = parseJSON(data, path)
	case ".yaml", ".yml":
		records, err = parseYAML(data, path)
	default:
		return nil, fmt.Errorf("registry %s: unsupported format %q (want .hcl, .json, .yaml)", path, ext)
	}
	if err != nil {
		return nil, err
	}

	reg := New(records)
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return reg, nil
}
