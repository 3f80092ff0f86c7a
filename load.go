package rnav

import (
	"bytes"
	"io"
	"os"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// tableFile is the YAML form of a route table.
//
//	routes:
//	  - path: /books/:id
//	    name: book-detail
//	    view: BookDetailView
type tableFile struct {
	Routes []RouteDef `yaml:"routes"`
}

// LoadTable decodes a YAML route table and builds it with NewTable.
// Unknown keys and decode failures are reported as a *ConfigError of kind ErrDecode.
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, &ConfigError{Kind: ErrEmptyTable, Index: -1, Detail: "route file is empty"}
		}
		return nil, &ConfigError{Kind: ErrDecode, Index: -1, Detail: err.Error()}
	}

	return NewTable(file.Routes...)
}

// LoadTableFile reads a YAML route table from disk.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "read route file", "path", path)
	}

	table, err := LoadTable(bytes.NewReader(data))
	if err != nil {
		return nil, serr.Wrap(err, "load route file", "path", path)
	}
	return table, nil
}
