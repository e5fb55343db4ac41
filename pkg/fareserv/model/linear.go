package model

import "fmt"

type linear struct {
	columns      []string
	intercept    float64
	coefficients []float64
}

func newLinear(a artifact) (*linear, error) {
	if len(a.Coefficients) != len(a.Columns) {
		return nil, fmt.Errorf("linear model has %d coefficients for %d columns", len(a.Coefficients), len(a.Columns))
	}
	return &linear{
		columns:      a.Columns,
		intercept:    a.Intercept,
		coefficients: a.Coefficients,
	}, nil
}

func (m *linear) Columns() []string { return m.columns }

func (m *linear) Predict(row []float64) (float64, error) {
	if len(row) != len(m.coefficients) {
		return 0, errRowWidth
	}
	y := m.intercept
	for i, x := range row {
		y += m.coefficients[i] * x
	}
	return y, nil
}
