// SPDX-License-Identifier: MIT

// Package matfile reads and writes matrices and vectors as JSON or YAML
// documents.
//
// A matrix document is either flat:
//
//	{"rows": 2, "cols": 2, "data": [1, 2, 3, 4]}
//
// or nested, one array per row:
//
//	{"values": [[1, 2], [3, 4]]}
//
// Writers always emit the flat form.
package matfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numla/matrix"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	// ErrMalformed marks a document whose dimensions and data disagree.
	ErrMalformed = errors.New("matfile: malformed document")
	// ErrNonFinite marks a NaN or ±Inf value that JSON cannot represent.
	// YAML writes them as .nan, .inf and -.inf.
	ErrNonFinite = errors.New("matfile: non-finite value needs yaml output")
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("matfile: unknown format %q", s)
	}
}

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// MatrixDocument is the serialized form of a matrix.Dense.
type MatrixDocument struct {
	Rows   int         `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols   int         `json:"cols,omitempty" yaml:"cols,omitempty"`
	Data   []float64   `json:"data,omitempty" yaml:"data,omitempty,flow"`
	Values [][]float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// VectorDocument is the serialized form of a matrix.Vector.
type VectorDocument struct {
	Len  int       `json:"len" yaml:"len"`
	Data []float64 `json:"data" yaml:"data,flow"`
}

// FromDense snapshots m in flat form.
func FromDense(m *matrix.Dense) MatrixDocument {
	data := make([]float64, len(m.RawData()))
	copy(data, m.RawData())
	return MatrixDocument{Rows: m.Rows(), Cols: m.Cols(), Data: data}
}

// FromVector snapshots v.
func FromVector(v *matrix.Vector) VectorDocument {
	return VectorDocument{Len: v.Len(), Data: v.Data()}
}

// Dense builds a matrix from the document, accepting either form.
func (d MatrixDocument) Dense() (*matrix.Dense, error) {
	rows, cols, data := d.Rows, d.Cols, d.Data
	if len(d.Values) > 0 {
		if len(d.Data) > 0 {
			return nil, fmt.Errorf("%w: both data and values given", ErrMalformed)
		}
		rows, cols = len(d.Values), len(d.Values[0])
		data = make([]float64, 0, rows*cols)
		for i, row := range d.Values {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformed, i, len(row), cols)
			}
			data = append(data, row...)
		}
	}
	m, err := matrix.NewRaw(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrMalformed, rows, cols, rows*cols, len(data))
	}
	copy(m.RawData(), data)
	return m, nil
}

// Vector builds a vector from the document. Len may be omitted.
func (d VectorDocument) Vector() (*matrix.Vector, error) {
	if d.Len != 0 && d.Len != len(d.Data) {
		return nil, fmt.Errorf("%w: len %d but %d values", ErrMalformed, d.Len, len(d.Data))
	}
	return matrix.NewVectorFrom(d.Data)
}

// Decode unmarshals one document of the given format into out.
func Decode(r io.Reader, f Format, out any) error {
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(out)
	case YAML:
		err = yaml.NewDecoder(r).Decode(out)
	default:
		return fmt.Errorf("matfile: unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("matfile: decode %s: %w", f, err)
	}
	return nil
}

// Encode marshals v in the given format. JSON output is indented.
// JSON has no literal for NaN or ±Inf: such values fail with ErrNonFinite
// and nothing is written.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			return fmt.Errorf("%w: %s", ErrNonFinite, unsupported.Str)
		}
		if err != nil {
			return fmt.Errorf("matfile: encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("matfile: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("matfile: unknown format %q", f)
	}
}

// DecodeMatrix reads one matrix document.
func DecodeMatrix(r io.Reader, f Format) (*matrix.Dense, error) {
	var doc MatrixDocument
	if err := Decode(r, f, &doc); err != nil {
		return nil, err
	}
	return doc.Dense()
}

// EncodeMatrix writes m in flat form.
func EncodeMatrix(w io.Writer, f Format, m *matrix.Dense) error {
	return Encode(w, f, FromDense(m))
}

// ReadMatrix loads a matrix file, choosing the format from its extension.
// "-" reads JSON from stdin.
func ReadMatrix(path string) (*matrix.Dense, error) {
	if path == "-" {
		return DecodeMatrix(os.Stdin, JSON)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	m, err := DecodeMatrix(fh, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
