// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one YAML problem from r. Unknown fields are rejected.
// The result is not validated; see Validate.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("problem: decode: %w", err)
	}

	return &p, nil
}

// Load decodes the problem stored at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode writes p to w as YAML.
func (p *Problem) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("problem: encode: %w", err)
	}

	return enc.Close()
}
