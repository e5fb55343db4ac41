// Package model loads the serialized fare regressor.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/encoder"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
)

// Kinds of serialized models
const (
	KindLinear = "linear"
	KindForest = "forest"
)

var errRowWidth = errors.New("row width does not match model columns")

// Regressor predicts a price for one feature row. Implementations are read-only
// after Load and safe for concurrent use.
type Regressor interface {
	Predict(row []float64) (float64, error)
	Columns() []string
}

type artifact struct {
	Kind         string    `json:"kind"`
	Columns      []string  `json:"columns"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Trees        []Tree    `json:"trees,omitempty"`
}

// Load reads a model artifact and checks it against the encoder schema
func Load(path string) (Regressor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fault.ModelLoadError{
				Path: path,
				Msg:  "Model file not found. Please ensure the file path is correct.",
				Err:  err,
			}
		}
		return nil, fault.ModelLoadError{Path: path, Err: err}
	}
	return Decode(raw, path)
}

// Decode builds a regressor from artifact bytes
func Decode(raw []byte, path string) (Regressor, error) {
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fault.ModelLoadError{Path: path, Err: err}
	}
	if err := checkColumns(a.Columns, encoder.Columns()); err != nil {
		return nil, fault.ModelLoadError{Path: path, Err: err}
	}

	var (
		r   Regressor
		err error
	)
	switch a.Kind {
	case KindLinear:
		r, err = newLinear(a)
	case KindForest:
		r, err = newForest(a)
	default:
		err = fmt.Errorf("unknown model kind %q", a.Kind)
	}
	if err != nil {
		return nil, fault.ModelLoadError{Path: path, Err: err}
	}
	return r, nil
}

func checkColumns(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("model has %d columns, encoder produces %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("column %d is %q, expected %q", i, got[i], want[i])
		}
	}
	return nil
}
