package domain

import "fmt"

// ClusterPosition is where in a syllable a consonant cluster occurs.
type ClusterPosition string

const (
	ClusterPositionInitial ClusterPosition = "initial"
	ClusterPositionFinal   ClusterPosition = "final"
)

// Valid reports whether p is a known position.
func (p ClusterPosition) Valid() bool {
	switch p {
	case ClusterPositionInitial, ClusterPositionFinal:
		return true
	}
	return false
}

// ParseClusterPosition converts s to a ClusterPosition.
func ParseClusterPosition(s string) (ClusterPosition, error) {
	p := ClusterPosition(s)
	if !p.Valid() {
		return "", fmt.Errorf("cluster position %q: %w", s, ErrInvalid)
	}
	return p, nil
}

// ClusterRow is one example word for a consonant cluster, with the correct
// reading and the common mispronunciation that inserts a vowel.
type ClusterRow struct {
	Cluster  string `json:"cluster"`
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Correct  string `json:"correct"`
	Wrong    string `json:"wrong"`
}

type Tip struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PracticeStep struct {
	Num         string `json:"num"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
