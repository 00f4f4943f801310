package shell

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Script is a sequence of commands run against a seeded revolver.
type Script struct {
	// Values seed the revolver before any command runs.
	Values []string `yaml:"values"`
	// Commands are command lines in the Parse format.
	Commands []string `yaml:"commands"`
	// Strict stops the script at the first failing command.
	Strict bool `yaml:"strict"`
}

// LoadScript decodes a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script

	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	return &s, nil
}
