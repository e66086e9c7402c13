package services

import (
	"context"
	"errors"
	"fmt"
)

// LinearClassifier scores each class as coef·x + intercept. A single coefficient
// row is the binary form: positive decisions pick the second class.
type LinearClassifier struct {
	Kind      string      `json:"kind"`
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

func (c *LinearClassifier) binary() bool {
	return len(c.Coef) == 1 && len(c.Classes) == 2
}

func (c *LinearClassifier) validate() error {
	if len(c.Coef) == 0 {
		return errors.New("no coefficient rows")
	}
	if len(c.Intercept) != len(c.Coef) {
		return fmt.Errorf("intercept has %d entries for %d coefficient rows", len(c.Intercept), len(c.Coef))
	}
	if !c.binary() && len(c.Coef) != len(c.Classes) {
		return fmt.Errorf("%d coefficient rows for %d classes", len(c.Coef), len(c.Classes))
	}
	return nil
}

func (c *LinearClassifier) decision(row int, x map[int]float64) (float64, error) {
	coef := c.Coef[row]
	score := c.Intercept[row]
	for idx, value := range x {
		if idx >= len(coef) {
			return 0, fmt.Errorf("feature index %d exceeds %d coefficients", idx, len(coef))
		}
		score += coef[idx] * value
	}
	return score, nil
}

func (c *LinearClassifier) Predict(_ context.Context, features Features) ([]string, error) {
	if features.Sparse == nil {
		return nil, errors.New("linear classifier requires sparse features")
	}

	if c.binary() {
		score, err := c.decision(0, features.Sparse)
		if err != nil {
			return nil, err
		}
		if score > 0 {
			return []string{c.Classes[1]}, nil
		}
		return []string{c.Classes[0]}, nil
	}

	best := 0
	bestScore := 0.0
	for row := range c.Coef {
		score, err := c.decision(row, features.Sparse)
		if err != nil {
			return nil, err
		}
		if row == 0 || score > bestScore {
			best, bestScore = row, score
		}
	}
	return []string{c.Classes[best]}, nil
}
