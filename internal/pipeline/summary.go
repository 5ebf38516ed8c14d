package pipeline

import (
	"sort"

	"textclean/internal"
)

// SummarizeLabels counts rows per label, most frequent first, ties by label.
func SummarizeLabels(rows []internal.CleanedRow) []internal.LabelCount {
	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Label]++
	}

	out := make([]internal.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, internal.LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func TopLabels(summary []internal.LabelCount, limit int) []internal.LabelCount {
	if limit <= 0 || len(summary) <= limit {
		return summary
	}
	return summary[:limit]
}
