// Package loader reads candidate AppSpec documents from JSON or YAML files
// for offline tooling. It validates structure before decoding so that the
// rest of the toolchain only ever sees valid specs. The core packages never
// touch the filesystem; this exists for the CLI.
package loader

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/carefoundry/appspec/model"
	"github.com/carefoundry/appspec/validate"
)

// LoadedSpec is a validated spec together with its provenance.
type LoadedSpec struct {
	Spec       *model.AppSpec
	Checksum   string
	SourceFile string
}

// ErrInvalidSpec marks a file that parsed but failed structural validation.
type ErrInvalidSpec struct {
	Path string
}

func (e *ErrInvalidSpec) Error() string {
	return fmt.Sprintf("%s is not a valid AppSpec document", e.Path)
}

// FromFile loads, validates, and decodes a single spec file. The format is
// chosen by extension: .yaml/.yml parse as YAML, everything else as JSON.
func FromFile(path string) (*LoadedSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	spec, ok := validate.Decode(doc)
	if !ok {
		return nil, &ErrInvalidSpec{Path: path}
	}

	return &LoadedSpec{
		Spec:       spec,
		Checksum:   fmt.Sprintf("%x", sha256.Sum256(data)),
		SourceFile: path,
	}, nil
}
