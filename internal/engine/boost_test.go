package engine

import "testing"

func TestApplyMetadataBoost(t *testing.T) {
	cases := []struct {
		name       string
		learnerEdu string
		courseEdu  string
		difficulty string
		want       float64
	}{
		{
			name:       "education within one step",
			learnerEdu: "Graduate",
			courseEdu:  "Undergraduate",
			difficulty: "Advanced",
			// x1.3 education, x1.1 graduate-and-intermediate-or-harder.
			want: 1.3 * 1.1,
		},
		{
			name:       "high school beginner stacks both boosts",
			learnerEdu: "High School",
			courseEdu:  "High School",
			difficulty: "Beginner",
			want:       1.3 * 1.2,
		},
		{
			name:       "education gap of two",
			learnerEdu: "High School",
			courseEdu:  "Graduate",
			difficulty: "Beginner",
			want:       1.2,
		},
		{
			name:       "high school learner advanced course",
			learnerEdu: "High School",
			courseEdu:  "High School",
			difficulty: "Advanced",
			want:       1.3,
		},
		{
			name:       "unknown levels use defaults",
			learnerEdu: "",
			courseEdu:  "",
			difficulty: "",
			// Defaults Undergraduate/Undergraduate/Beginner: only the
			// education boost applies.
			want: 1.3,
		},
		{
			name:       "professional learner intermediate course",
			learnerEdu: "Professional",
			courseEdu:  "Graduate",
			difficulty: "Intermediate",
			want:       1.3 * 1.1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := applyMetadataBoost(1, tc.learnerEdu, tc.courseEdu, tc.difficulty)
			if !approx(got, tc.want) {
				t.Fatalf("boost: want=%v got=%v", tc.want, got)
			}
		})
	}
}

func TestApplyMetadataBoostZeroStaysZero(t *testing.T) {
	if got := applyMetadataBoost(0, "High School", "High School", "Beginner"); got != 0 {
		t.Fatalf("boosting zero: want=0 got=%v", got)
	}
}

func TestApplyMetadataBoostNoClamp(t *testing.T) {
	got := applyMetadataBoost(0.9, "Undergraduate", "Undergraduate", "Intermediate")
	if got <= 1 {
		t.Fatalf("boosted score should exceed 1, got=%v", got)
	}
}
