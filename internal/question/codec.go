package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPool reads a pool file (JSON, or YAML by extension). Sources are ordered
// by keys; keys missing from the file become empty sources. When keys is empty
// the file's keys are used in sorted order.
func LoadPool(path string, keys []string) (Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("read pool: %w", err)
	}
	var raw map[string][]Question
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" || ext == ".yaml" {
		raw, err = decodeYAMLPool(data)
	} else {
		raw, err = decodeJSONPool(data)
	}
	if err != nil {
		return Pool{}, err
	}
	return assemblePool(raw, keys), nil
}

// DecodePool decodes a JSON pool payload.
func DecodePool(data []byte, keys []string) (Pool, error) {
	raw, err := decodeJSONPool(data)
	if err != nil {
		return Pool{}, err
	}
	return assemblePool(raw, keys), nil
}

func decodeJSONPool(data []byte) (map[string][]Question, error) {
	var raw map[string][]Question
	if err := decodeJSON(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeYAMLPool(data []byte) (map[string][]Question, error) {
	raw := map[string][]Question{}
	if err := decodeYAML(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeSources decodes a pool object without sanitizing it.
func DecodeSources(data []byte, yamlFormat bool) (map[string][]Question, error) {
	if yamlFormat {
		return decodeYAMLPool(data)
	}
	return decodeJSONPool(data)
}

// DecodeList decodes a bare list of questions without sanitizing it.
func DecodeList(data []byte, yamlFormat bool) ([]Question, error) {
	var list []Question
	var err error
	if yamlFormat {
		err = decodeYAML(data, &list)
	} else {
		err = decodeJSON(data, &list)
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func decodeJSON(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func assemblePool(raw map[string][]Question, keys []string) Pool {
	if len(keys) == 0 {
		keys = make([]string, 0, len(raw))
		for key := range raw {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}
	pool := Pool{Sources: make([]Source, 0, len(keys))}
	for _, key := range keys {
		questions, _ := Sanitize(raw[key])
		pool.Sources = append(pool.Sources, Source{Key: key, Label: key, Questions: questions})
	}
	return pool
}

// MarshalJSON encodes the pool as an object of source key to question list,
// keeping source order.
func (p Pool) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, source := range p.Sources {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(source.Key)
		if err != nil {
			return nil, err
		}
		questions := source.Questions
		if questions == nil {
			questions = []Question{}
		}
		list, err := json.Marshal(questions)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WritePool writes the pool as indented JSON.
func WritePool(path string, pool Pool) error {
	compact, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("indent pool: %w", err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
