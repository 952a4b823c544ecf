package yahoo

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The yahoo fantasy API renders entities as positional arrays of single-key
// objects rather than flat objects: a "team" arrives as
//
//	[[{"team_key": "449.l.51234.t.4"}, {"name": "Moved the Chains"}, ...], {"roster": ...}]
//
// flattenFields collects every tagged field in such a structure into one flat
// key -> raw value record. Objects are merged as-is, arrays are walked
// recursively, and nulls are skipped, so the function is safe to call on any
// fragment of a response. When a key appears more than once the first value
// wins. Flattening an already-flat object returns an equivalent record, which
// makes the function idempotent.
func flattenFields(raw json.RawMessage) map[string]json.RawMessage {
	fields := make(map[string]json.RawMessage)
	collectFields(raw, fields)
	return fields
}

func collectFields(raw json.RawMessage, fields map[string]json.RawMessage) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}

	switch raw[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return
		}
		for k, v := range obj {
			if _, found := fields[k]; !found {
				fields[k] = v
			}
		}
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return
		}
		for _, el := range arr {
			collectFields(el, fields)
		}
	}
	// Scalars carry no tag and are dropped.
}

// fieldString returns the string value stored under key, or "" when the key
// is absent or not a string.
func fieldString(fields map[string]json.RawMessage, key string) string {
	raw, found := fields[key]
	if !found {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// fieldArray returns the array stored under key, or nil.
func fieldArray(fields map[string]json.RawMessage, key string) []json.RawMessage {
	raw, found := fields[key]
	if !found {
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil
	}
	return arr
}

// fieldObject returns the object stored under key, or nil.
func fieldObject(fields map[string]json.RawMessage, key string) map[string]json.RawMessage {
	raw, found := fields[key]
	if !found {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

// flexFloat parses a yahoo point total, which shows up both as a bare number
// and as a quoted string depending on the endpoint. Unparseable values are 0.
func flexFloat(raw json.RawMessage) float64 {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
