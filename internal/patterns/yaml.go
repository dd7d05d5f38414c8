package patterns

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// patternFile is the on-disk form. A pattern gives either explicit [x, y]
// cells or text rows in the Parse format.
type patternFile struct {
	Patterns []struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		Cells       [][]int `yaml:"cells"`
		Rows        string  `yaml:"rows"`
	} `yaml:"patterns"`
}

// Load decodes a YAML pattern file.
func Load(r io.Reader) ([]Pattern, error) {
	var doc patternFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode patterns: %w", err)
	}

	out := make([]Pattern, 0, len(doc.Patterns))
	for i, entry := range doc.Patterns {
		if entry.Name == "" {
			return nil, fmt.Errorf("pattern %d: missing name", i)
		}
		p := Pattern{Name: entry.Name, Description: entry.Description}
		for j, c := range entry.Cells {
			if len(c) != 2 {
				return nil, fmt.Errorf("pattern %q cell %d: want [x, y], got %v", entry.Name, j, c)
			}
			p.Cells = append(p.Cells, image.Pt(c[0], c[1]))
		}
		if entry.Rows != "" {
			cells, err := Parse(entry.Rows)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", entry.Name, err)
			}
			p.Cells = append(p.Cells, cells...)
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads patterns from path into l.
func (l *Library) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open patterns: %w", err)
	}
	defer f.Close()

	ps, err := Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, p := range ps {
		l.Add(p)
	}
	return nil
}
