package engine

import (
	"math"
	"sort"
)

const maxVocabularyTerms = 500

// tfidfModel holds the per-request fitted state: the capped vocabulary and
// the smoothed inverse document frequency per term. Nothing survives the
// request that fitted it.
type tfidfModel struct {
	idf map[string]float64
}

// fitTFIDF fits over the given documents (term lists): vocabulary capped to
// the maxTerms highest-total-count terms (ties break lexicographically), and
// idf(t) = ln((1+n)/(1+df(t))) + 1.
func fitTFIDF(docs [][]string, maxTerms int) *tfidfModel {
	totals := map[string]int{}
	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]struct{}{}
		for _, term := range doc {
			totals[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	vocab := make([]string, 0, len(totals))
	for term := range totals {
		vocab = append(vocab, term)
	}
	if maxTerms > 0 && len(vocab) > maxTerms {
		sort.Slice(vocab, func(a, b int) bool {
			if totals[vocab[a]] != totals[vocab[b]] {
				return totals[vocab[a]] > totals[vocab[b]]
			}
			return vocab[a] < vocab[b]
		})
		vocab = vocab[:maxTerms]
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return &tfidfModel{idf: idf}
}

// vector returns the L2-normalized tf-idf weights of a document over the
// fitted vocabulary. Terms outside the vocabulary contribute nothing.
func (m *tfidfModel) vector(doc []string) map[string]float64 {
	counts := map[string]int{}
	for _, term := range doc {
		if _, ok := m.idf[term]; ok {
			counts[term]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	weights := make(map[string]float64, len(counts))
	var norm float64
	for term, tf := range counts {
		w := float64(tf) * m.idf[term]
		weights[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for term := range weights {
		weights[term] /= norm
	}
	return weights
}

// dotSparse is the cosine similarity of two L2-normalized sparse vectors.
func dotSparse(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a {
		if bw, ok := b[term]; ok {
			dot += w * bw
		}
	}
	return dot
}

// cosine32 is the cosine similarity of two dense embedding vectors. Vectors
// of mismatched or zero length, and zero vectors, score 0.
func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// lexicalScores fits a fresh vectorizer over all course blobs plus the
// learner blob, then scores each course by cosine similarity against the
// learner. Scores land in [0, 1].
func lexicalScores(courseTexts []string, learnerBlob string) []float64 {
	docs := make([][]string, 0, len(courseTexts)+1)
	for _, t := range courseTexts {
		docs = append(docs, ngramTerms(t))
	}
	learnerDoc := ngramTerms(learnerBlob)
	docs = append(docs, learnerDoc)

	model := fitTFIDF(docs, maxVocabularyTerms)
	learnerVec := model.vector(learnerDoc)

	out := make([]float64, len(courseTexts))
	if learnerVec == nil {
		return out
	}
	for i := range courseTexts {
		out[i] = dotSparse(model.vector(docs[i]), learnerVec)
	}
	return out
}
