package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/tabula-historica/snapshot/pkg/domain"
)

// Stripped is the result of removing keys from a project document.
type Stripped struct {
	Data    []byte
	Removed []string
	Missing []string
}

// Strip removes the given top-level keys from the JSON object in data.
//
// Values are written back as they were parsed: key order, nesting, string
// escapes and number text (large integers are not rounded through float64).
// Top-level keys are re-encoded as JSON strings, so an escape such as \u00e9 in a
// top-level key may come back as the literal character. Whitespace between tokens
// is dropped. Every occurrence of a duplicated key is removed.
//
// A key that is not present fails with domain.ErrKeyAbsent unless allowMissing is set,
// in which case it is reported in Stripped.Missing.
func Strip(data []byte, keys []string, allowMissing bool) (*Stripped, error) {
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: top level is %s, expected object", domain.ErrParse, v.Type())
	}

	res := &Stripped{Removed: []string{}}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true

		if obj.Get(key) == nil {
			if !allowMissing {
				return nil, fmt.Errorf("%w: %q", domain.ErrKeyAbsent, key)
			}
			res.Missing = append(res.Missing, key)
			continue
		}

		// Del only drops the first match.
		for obj.Get(key) != nil {
			obj.Del(key)
		}
		res.Removed = append(res.Removed, key)
	}

	out, err := marshalObject(obj, len(data))
	if err != nil {
		return nil, err
	}
	res.Data = out
	return res, nil
}

// marshalObject writes obj without fastjson's key quoting.
// Any lookup miss unescapes the object's keys, and fastjson then re-quotes them with
// Go escapes (\x01) that are not valid JSON.
func marshalObject(obj *fastjson.Object, sizeHint int) ([]byte, error) {
	out := make([]byte, 0, sizeHint)
	out = append(out, '{')

	var encErr error
	first := true
	obj.Visit(func(key []byte, val *fastjson.Value) {
		if encErr != nil {
			return
		}
		k, err := encodeKey(string(key))
		if err != nil {
			encErr = err
			return
		}
		if !first {
			out = append(out, ',')
		}
		first = false
		out = append(out, k...)
		out = append(out, ':')
		out = val.MarshalTo(out)
	})
	if encErr != nil {
		return nil, encErr
	}

	out = append(out, '}')
	return out, nil
}

func encodeKey(key string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Indent re-formats compact JSON with one member per line.
// An empty indent returns data unchanged.
func Indent(data []byte, indent string) ([]byte, error) {
	if indent == "" {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent snapshot: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
