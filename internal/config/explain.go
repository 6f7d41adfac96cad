package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// String formats the source for display. A value without a file position
// came from the built-in defaults.
func (s Source) String() string {
	if s.File == "" {
		return "default"
	}
	if s.Line > 0 {
		return fmt.Sprintf("file:%s:%d:%d", s.File, s.Line, s.Column)
	}
	return "file:" + s.File
}

// Explain returns the value at a dotted YAML path such as "struts.top" and
// where it came from.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is required")
	}

	data, err := res.Config.Marshal()
	if err != nil {
		return nil, Source{}, err
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, Source{}, fmt.Errorf("failed to decode config: %w", err)
	}

	var value any = tree
	for _, key := range strings.Split(path, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, Source{}, fmt.Errorf("unknown config path %q", path)
		}
		value, ok = m[key]
		if !ok {
			return nil, Source{}, fmt.Errorf("unknown config path %q", path)
		}
	}

	return value, res.Sources[path], nil
}
