package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

// Load reads a settings file from disk and builds the CheckConfig.
func Load(path string) (*CheckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, auditerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes settings YAML. Unknown keys are rejected. An empty document
// yields the default configuration.
func Parse(data []byte, source string) (*CheckConfig, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, auditerrors.NewDecodeError(source, err)
	}
	return New(s)
}
