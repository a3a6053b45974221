package bench

// Metrics holds token-level scores for one evaluation.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// Evaluate aligns predicted tokens against gold tokens and scores the
// match. Alignment is a longest common subsequence, so token order
// matters but insertions and deletions on either side do not cascade.
func Evaluate(predicted, gold []string) Metrics {
	tp := lcs(predicted, gold)
	return Score(tp, len(predicted)-tp, len(gold)-tp)
}

// Score computes precision, recall, and F1 from raw counts.
func Score(tp, fp, fn int) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// lcs returns the length of the longest common subsequence of a and b,
// using a rolling row to keep memory at O(len(b)).
func lcs(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
