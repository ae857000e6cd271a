package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixlib/matrix"
)

// matrixFile is the mapping form of a matrix file:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
type matrixFile struct {
	Rows [][]any `yaml:"rows"`
}

// LoadError represents a failure to read or decode a matrix file.
// Errors raised by the matrix package are never wrapped in a LoadError;
// classify those with matrix.KindOf.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadMatrix reads a YAML (or JSON) matrix file and builds a Matrix from it.
// The document is either a sequence of rows or a mapping with a "rows" key.
func LoadMatrix(path string, opts ...matrix.Option) (*matrix.Matrix, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "matrix file not found", Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error(), Err: err}
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Path: path, Message: err.Error(), Err: err}
	}

	m, err := matrix.NewFromValues(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// decodeRows accepts either document shape and returns the raw rows.
func decodeRows(data []byte) ([][]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var rows [][]any
		if err := root.Decode(&rows); err != nil {
			return nil, err
		}
		return rows, nil
	case yaml.MappingNode:
		var f matrixFile
		if err := root.Decode(&f); err != nil {
			return nil, err
		}
		return f.Rows, nil
	default:
		return nil, fmt.Errorf("line %d: expected a sequence of rows or a mapping with \"rows\"", root.Line)
	}
}
