package tableconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadJSON loads a flat property document from a JSON reader. Scalar values
// are converted to the strings the validation pipeline expects; numbers keep
// the spelling they had in the document. An empty document yields an empty
// batch.
func LoadJSON(r io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return stringifyValues(doc)
}

// LoadYAML loads a flat property document from a YAML reader.
func LoadYAML(r io.Reader) (map[string]string, error) {
	dec := yaml.NewDecoder(r)
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return stringifyValues(doc)
}

func stringifyValues(doc map[string]any) (map[string]string, error) {
	properties := make(map[string]string, len(doc))
	for key, value := range doc {
		switch v := value.(type) {
		case string:
			properties[key] = v
		case bool:
			properties[key] = strconv.FormatBool(v)
		case json.Number:
			properties[key] = v.String()
		case int:
			properties[key] = strconv.Itoa(v)
		case int64:
			properties[key] = strconv.FormatInt(v, 10)
		case uint64:
			properties[key] = strconv.FormatUint(v, 10)
		case float64:
			properties[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			return nil, fmt.Errorf("property %q has a null value", key)
		default:
			return nil, fmt.Errorf("property %q must be a scalar, got %T", key, value)
		}
	}
	return properties, nil
}
