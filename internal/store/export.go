package store

import (
	"encoding/json"
	"fmt"
	"os"

	"daybook/internal/model"
)

// ExportJSON writes the current document to path as indented JSON.
func (s *Store) ExportJSON(path string) error {
	snap, err := s.Load()
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(snap.Doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, append(body, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ImportJSON replaces the whole document with the contents of path.
func (s *Store) ImportJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return s.Update("document.import", func(model.Document) (model.Document, error) {
		return doc, nil
	})
}
