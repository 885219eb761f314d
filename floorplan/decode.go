package floorplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a floor plan from r. A document starting with '{' is JSON and
// uses the json keys (storeId, items), anything else is YAML (store_id, cells).
// Unknown keys are rejected so that typos in hand-written plans surface early.
func Decode(r io.Reader) (*FloorPlan, error) {
	var fp FloorPlan
	if err := decodeStrict(r, &fp); err != nil {
		return nil, fmt.Errorf("floorplan: decode: %w", err)
	}
	if fp.Width < 0 || fp.Height < 0 {
		return nil, ErrDimensions
	}

	return &fp, nil
}

// Load reads a floor plan file from path.
func Load(path string) (*FloorPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("floorplan: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// DecodeList reads a YAML or JSON shopping list from r, like Decode.
func DecodeList(r io.Reader) (*ShoppingList, error) {
	var sl ShoppingList
	if err := decodeStrict(r, &sl); err != nil {
		return nil, fmt.Errorf("floorplan: decode list: %w", err)
	}

	return &sl, nil
}

// LoadList reads a shopping list file from path.
func LoadList(path string) (*ShoppingList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("floorplan: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeList(f)
}

// decodeStrict picks the codec from the first non-blank byte and rejects
// unknown keys with either one.
func decodeStrict(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()

		return dec.Decode(v)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(v)
}

// Encode writes fp as YAML to w.
func Encode(w io.Writer, fp *FloorPlan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fp); err != nil {
		return fmt.Errorf("floorplan: encode: %w", err)
	}

	return enc.Close()
}
