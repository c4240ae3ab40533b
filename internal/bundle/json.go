package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ctessum/sparse"
)

// JSON bundle format: groups are objects, leaves are either a plain array
// of numbers (rank 1) or {"shape": [...], "data": [...]} for higher ranks.

type jsonArray struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// ReadFile loads a raw bundle from a JSON file.
func ReadFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a JSON document into a Bundle.
func Decode(data []byte) (Bundle, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bundle: decode: %w", err)
	}
	return decodeGroup(raw)
}

func decodeGroup(raw map[string]json.RawMessage) (Bundle, error) {
	b := make(Bundle, len(raw))
	for key, msg := range raw {
		entry, err := decodeEntry(msg)
		if err != nil {
			return nil, fmt.Errorf("bundle: key %q: %w", key, err)
		}
		b[key] = entry
	}
	return b, nil
}

func decodeEntry(msg json.RawMessage) (Entry, error) {
	// A bare numeric array is a rank-1 leaf.
	var vec []float64
	if err := json.Unmarshal(msg, &vec); err == nil {
		a := sparse.ZerosDense(len(vec))
		copy(a.Elements, vec)
		return Entry{Array: a}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(msg, &obj); err != nil {
		return Entry{}, err
	}

	if _, hasShape := obj["shape"]; hasShape {
		if _, hasData := obj["data"]; hasData {
			var ja jsonArray
			if err := json.Unmarshal(msg, &ja); err != nil {
				return Entry{}, err
			}
			return Entry{Array: denseFromJSON(ja)}, nil
		}
	}

	g, err := decodeGroup(obj)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Group: g}, nil
}

func denseFromJSON(ja jsonArray) *sparse.DenseArray {
	shape := ja.Shape
	if len(shape) == 0 {
		shape = []int{len(ja.Data)}
	}
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, ja.Data)
	return a
}
