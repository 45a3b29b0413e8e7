// Package document loads neutral report documents from YAML or JSON files.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/validation"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

// Load reads and validates the document stored at path.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, auditerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a document. JSON input is accepted as a YAML subset. Unknown
// keys are ignored so exports from newer tooling still load.
func Parse(data []byte, source string) (*model.Document, error) {
	var doc model.Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, auditerrors.NewParseError(source, 0, fmt.Errorf("document is empty"))
		}
		return nil, auditerrors.NewDecodeError(source, err)
	}

	if err := validation.Struct(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadResult reads a previously written analysis result, as produced by the
// json or yaml output formats.
func LoadResult(path string) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, auditerrors.NewParseError(path, 0, err)
	}

	var result model.AnalysisResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, auditerrors.NewDecodeError(path, err)
	}
	return &result, nil
}
