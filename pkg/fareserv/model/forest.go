package model

import "fmt"

// Tree is a regression tree stored as a flat node array, root at index 0.
// A node with Left < 0 is a leaf.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is one split or leaf. Rows with row[Feature] <= Threshold go Left.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type forest struct {
	columns []string
	trees   []Tree
}

func newForest(a artifact) (*forest, error) {
	if len(a.Trees) == 0 {
		return nil, fmt.Errorf("forest has no trees")
	}
	for i, t := range a.Trees {
		if err := t.check(len(a.Columns)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return &forest{columns: a.Columns, trees: a.Trees}, nil
}

// children must point forward so every walk terminates
func (t Tree) check(width int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range t.Nodes {
		if n.Left < 0 {
			continue
		}
		if n.Feature < 0 || n.Feature >= width {
			return fmt.Errorf("node %d splits on feature %d of %d", i, n.Feature, width)
		}
		if n.Left <= i || n.Right <= i || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d/%d", i, n.Left, n.Right)
		}
	}
	return nil
}

func (t Tree) predict(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (m *forest) Columns() []string { return m.columns }

// Predict averages the trees
func (m *forest) Predict(row []float64) (float64, error) {
	if len(row) != len(m.columns) {
		return 0, errRowWidth
	}
	var sum float64
	for _, t := range m.trees {
		sum += t.predict(row)
	}
	return sum / float64(len(m.trees)), nil
}
