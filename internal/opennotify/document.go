package opennotify

import (
	"bytes"
	"encoding/json"
)

// Document is the generic key-value view of a decoded response body.
// Consumers index it by key; the typed extractors in this package turn it
// into domain values.
type Document map[string]any

// Decode parses raw response bytes as a JSON object. Malformed JSON yields a
// *DecodeError with the byte offset and the derived line and column; a
// well-formed body that is not an object yields a *SchemaError on the root.
func Decode(raw []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		var offset int64
		if syn, ok := err.(*json.SyntaxError); ok {
			offset = syn.Offset
		}
		line, column := position(raw, offset)
		return nil, &DecodeError{
			Err:    err,
			Body:   raw,
			Offset: offset,
			Line:   line,
			Column: column,
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &SchemaError{Field: "(root)", Document: Document{}}
	}
	return Document(obj), nil
}

// position converts a byte offset into a 1-based line and column.
func position(raw []byte, offset int64) (line, column int) {
	if offset > int64(len(raw)) {
		offset = int64(len(raw))
	}
	head := raw[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		column = int(offset) - i
	} else {
		column = int(offset)
	}
	return line, column
}

// str returns the named field as a string.
func (d Document) str(field string) (string, error) {
	s, ok := d[field].(string)
	if !ok {
		return "", &SchemaError{Field: field, Document: d}
	}
	return s, nil
}

// number returns the named field as a float64. encoding/json decodes every
// JSON number into float64, so this covers integers as well.
func (d Document) number(field string) (float64, error) {
	n, ok := d[field].(float64)
	if !ok {
		return 0, &SchemaError{Field: field, Document: d}
	}
	return n, nil
}

// object returns the named field as a nested Document.
func (d Document) object(field string) (Document, error) {
	m, ok := d[field].(map[string]any)
	if !ok {
		return nil, &SchemaError{Field: field, Document: d}
	}
	return Document(m), nil
}

// array returns the named field as a slice of raw values.
func (d Document) array(field string) ([]any, error) {
	a, ok := d[field].([]any)
	if !ok {
		return nil, &SchemaError{Field: field, Document: d}
	}
	return a, nil
}
