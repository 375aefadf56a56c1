/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package catalog

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/voedger/ifcschema/pkg/expschema"
)

// WriteJSON writes the schema document as indented JSON
func WriteJSON(w io.Writer, schema *expschema.Schema) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	return enc.Encode(NewDocument(schema))
}

// WriteYAML writes the schema document as YAML
func WriteYAML(w io.Writer, schema *expschema.Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(NewDocument(schema)); err != nil {
		return err
	}
	return enc.Close()
}
