package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"currency-registry/core/reconcile"
)

// Document is the JSON form of a registry.
type Document struct {
	Records   []reconcile.Record  `json:"records"`
	Numeric   map[string]string   `json:"numeric"`
	Countries map[string][]string `json:"countries"`
	Stats     reconcile.Stats     `json:"stats"`
}

// NewDocument captures a registry view.
func NewDocument(reg *reconcile.Registry) Document {
	return Document{
		Records:   reg.All(),
		Numeric:   reg.NumericKeys(),
		Countries: reg.CountryKeys(),
		Stats:     reg.Stats(),
	}
}

// EncodeJSON renders the registry as an indented JSON document.
func EncodeJSON(reg *reconcile.Registry) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(reg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registry: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON reads a document written by EncodeJSON.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode registry document: %w", err)
	}
	return doc, nil
}
