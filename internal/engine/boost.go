package engine

// Ordinal tables for the metadata boost. Unknown or missing levels fall back
// to Undergraduate (2) and Beginner (1) respectively.
var educationOrdinals = map[string]int{
	"High School":   1,
	"Undergraduate": 2,
	"Graduate":      3,
	"Professional":  4,
}

var difficultyOrdinals = map[string]int{
	"Beginner":     1,
	"Intermediate": 2,
	"Advanced":     3,
}

func educationOrdinal(level string) int {
	if v, ok := educationOrdinals[level]; ok {
		return v
	}
	return 2
}

func difficultyOrdinal(level string) int {
	if v, ok := difficultyOrdinals[level]; ok {
		return v
	}
	return 1
}

// applyMetadataBoost adjusts one combined score using the learner/course
// metadata rules:
//
//  1. x1.3 when the course's education level is within one step of the
//     learner's.
//  2. x1.2 when the learner is at High School level and the course is
//     Beginner difficulty; otherwise
//  3. x1.1 when the learner is Undergraduate or above and the course is
//     Intermediate or harder.
//
// Rules 2 and 3 are mutually exclusive; rule 1 stacks with either. Boosted
// scores are never clamped.
func applyMetadataBoost(score float64, learnerEducation, courseEducation, courseDifficulty string) float64 {
	learnerEdu := educationOrdinal(learnerEducation)
	courseEdu := educationOrdinal(courseEducation)
	diff := difficultyOrdinal(courseDifficulty)

	gap := courseEdu - learnerEdu
	if gap < 0 {
		gap = -gap
	}
	if gap <= 1 {
		score *= 1.3
	}

	if learnerEdu == 1 && diff == 1 {
		score *= 1.2
	} else if learnerEdu >= 2 && diff >= 2 {
		score *= 1.1
	}
	return score
}
