package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	manifestFileName = "package.json"
	initialVersion   = "0.1.0"
)

// orderedObject is a JSON object that remembers key order. The stdlib map
// decoding would scramble a manifest's field order on rewrite; package
// tooling and humans both expect the order the template author chose.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]json.RawMessage)}
}

func parseOrderedObject(data []byte) (*orderedObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	obj := newOrderedObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj.set(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func (o *orderedObject) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// set replaces an existing key in place or appends a new one.
func (o *orderedObject) set(key string, value json.RawMessage) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *orderedObject) setString(key, value string) {
	raw, _ := json.Marshal(value)
	o.set(key, raw)
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MergeManifest overlays project identity onto an existing package.json,
// preserving every field and the key order the template put there. Missing
// manifest is a no-op, not an error: the pre-packaged template may not ship
// one.
func MergeManifest(projectDir, projectName string, extraDependencies map[string]string) error {
	manifestPath := filepath.Join(projectDir, manifestFileName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", manifestFileName, err)
	}

	manifest, err := parseOrderedObject(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", manifestFileName, err)
	}

	manifest.setString("name", projectName)
	manifest.setString("version", initialVersion)
	manifest.set("private", json.RawMessage("true"))

	if len(extraDependencies) > 0 {
		deps := newOrderedObject()
		if raw, ok := manifest.get("dependencies"); ok {
			if deps, err = parseOrderedObject(raw); err != nil {
				return fmt.Errorf("failed to parse dependencies in %s: %w", manifestFileName, err)
			}
		}

		names := make([]string, 0, len(extraDependencies))
		for name := range extraDependencies {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			deps.setString(name, extraDependencies[name])
		}

		depsJSON, err := deps.MarshalJSON()
		if err != nil {
			return err
		}
		manifest.set("dependencies", depsJSON)
	}

	merged, err := manifest.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", manifestFileName, err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, merged, "", "  "); err != nil {
		return fmt.Errorf("failed to format %s: %w", manifestFileName, err)
	}
	pretty.WriteByte('\n')

	if err := os.WriteFile(manifestPath, pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestFileName, err)
	}

	return nil
}
