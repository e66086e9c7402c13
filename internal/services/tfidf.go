package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var tfidfTokenPattern = regexp.MustCompile(`\w\w+`)

// TfidfVectorizer maps text onto a fixed vocabulary with precomputed IDF weights.
type TfidfVectorizer struct {
	Kind        string         `json:"kind"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	NgramRange  [2]int         `json:"ngram_range"`
	SublinearTF bool           `json:"sublinear_tf"`
}

func (v *TfidfVectorizer) validate() error {
	if v.NgramRange[0] < 1 || v.NgramRange[1] < v.NgramRange[0] {
		return fmt.Errorf("invalid ngram range %v", v.NgramRange)
	}
	if len(v.Vocabulary) == 0 {
		return errors.New("empty vocabulary")
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("vocabulary term %q has index %d outside idf table of %d", term, idx, len(v.IDF))
		}
	}
	return nil
}

func (v *TfidfVectorizer) Transform(_ context.Context, text string) (Features, error) {
	tokens := tfidfTokenPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[int]float64)
	for n := v.NgramRange[0]; n <= v.NgramRange[1]; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			if idx, ok := v.Vocabulary[strings.Join(tokens[i:i+n], " ")]; ok {
				counts[idx]++
			}
		}
	}

	var norm float64
	for idx, tf := range counts {
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		weight := tf * v.IDF[idx]
		counts[idx] = weight
		norm += weight * weight
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			counts[idx] /= norm
		}
	}

	return Features{Text: text, Sparse: counts}, nil
}
