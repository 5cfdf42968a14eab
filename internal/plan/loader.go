package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned for an overrides document of another version.
var ErrUnsupportedVersion = errors.New("automap(plan): unsupported overrides version")

const yamlIndent = 2

// LoadFile reads and parses an overrides file.
func LoadFile(path string) (*Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overrides file %s: %w", path, err)
	}
	defer f.Close()

	o, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

// Parse parses an overrides document held in memory.
func Parse(data []byte) (*Overrides, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one overrides document. Keys the document format does not know
// are rejected, so a misspelled "ignore" cannot silently drop exclusions.
// An empty document yields empty overrides.
func Decode(r io.Reader) (*Overrides, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var o Overrides
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	switch o.Version {
	case "":
		o.Version = CurrentVersion
	case CurrentVersion:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, o.Version)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &o, nil
}

// Encode renders o as YAML.
func (o *Overrides) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(o); err != nil {
		return nil, fmt.Errorf("failed to encode overrides: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode overrides: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes o to path.
func (o *Overrides) WriteFile(path string) error {
	data, err := o.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write overrides file %s: %w", path, err)
	}

	return nil
}
