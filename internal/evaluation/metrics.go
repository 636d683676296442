package evaluation

import "math"

// RecallAtK computes Recall@K: the fraction of relevant items found in the top-K ranked results.
// Returns 0.0 if relevant is empty.
func RecallAtK(relevant, ranked []string, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}

	relevantSet := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		relevantSet[r] = struct{}{}
	}

	topK := ranked
	if k < len(topK) {
		topK = topK[:k]
	}

	found := 0
	for _, r := range topK {
		if _, ok := relevantSet[r]; ok {
			found++
		}
	}

	return float64(found) / float64(len(relevant))
}

// MRRAtK computes Mean Reciprocal Rank at K: the reciprocal of the rank of the first relevant item
// in the top-K ranked results. Returns 0.0 if no relevant item is found in top-K.
func MRRAtK(relevant, ranked []string, k int) float64 {
	if len(relevant) == 0 || len(ranked) == 0 {
		return 0.0
	}

	relevantSet := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		relevantSet[r] = struct{}{}
	}

	topK := ranked
	if k < len(topK) {
		topK = topK[:k]
	}

	for i, r := range topK {
		if _, ok := relevantSet[r]; ok {
			return 1.0 / float64(i+1)
		}
	}

	return 0.0
}

// NDCGAtK computes normalized discounted cumulative gain at K with binary
// relevance. The ideal ordering places every relevant item first.
// Returns 0.0 if relevant is empty.
func NDCGAtK(relevant, ranked []string, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}

	relevantSet := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		relevantSet[r] = struct{}{}
	}

	topK := ranked
	if k < len(topK) {
		topK = topK[:k]
	}

	dcg := 0.0
	for i, r := range topK {
		if _, ok := relevantSet[r]; ok {
			dcg += 1.0 / math.Log2(float64(i)+2)
		}
	}

	ideal := len(relevant)
	if k < ideal {
		ideal = k
	}
	idcg := 0.0
	for i := 0; i < ideal; i++ {
		idcg += 1.0 / math.Log2(float64(i)+2)
	}

	return dcg / idcg
}
