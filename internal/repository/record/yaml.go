package record

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// LoadYAML reads a catalog file.
func LoadYAML(path string) ([]domrec.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return DecodeYAML(bytes.NewReader(data))
}

// DecodeYAML parses a catalog stream. An empty stream is an empty catalog.
func DecodeYAML(r io.Reader) ([]domrec.Record, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return c.Records()
}

// EncodeYAML writes records in catalog layout.
func EncodeYAML(w io.Writer, records []domrec.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(CatalogFrom(records)); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
