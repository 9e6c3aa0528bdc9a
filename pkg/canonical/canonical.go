// Copyright (C) 2025 AEON Project
//
// This file is part of a2g-go.
//
// a2g-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a2g-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with a2g-go.  If not, see <https://www.gnu.org/licenses/>.

package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Encode serializes a JSON-shaped value into its canonical byte form,
// the stable MAC input used by the signer and verifier.
//
// The value is first normalized: structs and maps become mappings,
// slices become sequences, and number literals are preserved verbatim
// (no float round trip). Mapping keys are then sorted lexicographically
// at every nesting level, while sequence element order is untouched.
//
// Two encodings are produced from the normalized value:
//
//   - a top-level string encodes to its raw bytes, unquoted, so a bare
//     DID can be signed without JSON framing;
//   - anything else encodes to compact JSON with sorted keys, matching
//     serde_json / python json.dumps(sort_keys=True, separators=(',', ':'))
//     output byte for byte.
//
// Two callers that build structurally equal messages therefore always
// produce identical MAC input, regardless of key insertion order.
func Encode(v any) ([]byte, error) {
	norm, err := normalize(v)
	if err != nil {
		return nil, err
	}
	if s, ok := norm.(string); ok {
		return []byte(s), nil
	}
	var buf bytes.Buffer
	if err := write(&buf, norm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeToString is Encode returning a string.
func EncodeToString(v any) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// normalize reduces an arbitrary Go value to the closed set of JSON
// shapes (nil, bool, json.Number, string, []any, map[string]any) via a
// marshal/decode round trip. json.Number keeps the original number
// text so canonicalization never reformats numeric literals.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("value is not canonicalizable: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("value is not canonicalizable: %w", err)
	}
	return out, nil
}

func write(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(val.String())
	case string:
		return writeString(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := write(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := write(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		// normalize only emits the shapes above
		return fmt.Errorf("unexpected value of type %T after normalization", v)
	}
	return nil
}

// writeString emits a JSON string literal without HTML escaping, so
// '<', '>' and '&' survive unescaped as serde_json emits them.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a trailing newline
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
