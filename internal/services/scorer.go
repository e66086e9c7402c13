package services

const (
	// MaxRelevantSkills is the number of distinct vocabulary skills that earns a full score.
	MaxRelevantSkills = 25
	maxAtsScore       = 100
)

// CalculateAtsScore maps the number of distinct skills found to a 0-100 score,
// rounding any partial percentage up. Integer arithmetic keeps it exact.
func CalculateAtsScore(skills []string) int {
	n := len(skills)
	if n >= MaxRelevantSkills {
		return maxAtsScore
	}
	return (n*maxAtsScore + MaxRelevantSkills - 1) / MaxRelevantSkills
}
