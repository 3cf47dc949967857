// Package jsonutil provides shared utilities for decoding the loosely typed
// JSON produced by spreadsheet-backed services: cell conversion and
// array-of-object readers.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalNumbers unmarshals data into v with numbers decoded as
// json.Number instead of float64, so quantities keep their exact text.
// Errors are wrapped with the context message.
func UnmarshalNumbers(data []byte, v interface{}, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Cell returns the value stored under key as trimmed text. Spreadsheet
// cells arrive as strings, numbers, booleans or null depending on what the
// user typed, so every type is converted with ToString.
func Cell(m map[string]interface{}, key string) string {
	return strings.TrimSpace(ToString(m[key]))
}

// ToString converts an interface{} value to a string representation.
// Handles string, json.Number, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		// Format as integer for whole numbers, otherwise as float
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ObjectsOf returns the JSON objects contained in v when v is an array.
// Non-array values yield nil; non-object elements are skipped.
func ObjectsOf(v interface{}) []map[string]interface{} {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
