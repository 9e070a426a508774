package engine

import (
	"strings"
	"unicode"
)

// courseText is the text blob scored for one course: title, description and
// tags joined with single spaces.
func courseText(c Course) string {
	parts := []string{c.Title, c.Description, strings.Join(c.Tags, " ")}
	return strings.Join(parts, " ")
}

// learnerText is the query blob: career goal, desired skills, interests.
func learnerText(p LearnerProfile) string {
	parts := []string{
		p.CareerGoal,
		strings.Join(p.DesiredSkills, " "),
		strings.Join(p.Interests, " "),
	}
	return strings.Join(parts, " ")
}

// tokenize lowercases and splits into runs of two or more word characters,
// dropping single-character tokens and punctuation.
func tokenize(text string) []string {
	var out []string
	var cur strings.Builder
	runes := 0
	flush := func() {
		if runes >= 2 {
			out = append(out, cur.String())
		}
		cur.Reset()
		runes = 0
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			cur.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()
	return out
}

// ngramTerms produces the scored vocabulary terms for one document: stop
// words are removed first, then unigrams plus bigrams over the surviving
// token sequence.
func ngramTerms(text string) []string {
	toks := tokenize(text)
	kept := toks[:0]
	for _, t := range toks {
		if !isStopWord(t) {
			kept = append(kept, t)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}
