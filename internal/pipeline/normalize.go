package pipeline

import (
	"textclean/internal"
	"textclean/internal/util"
)

type NormalizedRecord struct {
	internal.RawRecord
	Normalized string
}

func NormalizeRecords(records []internal.RawRecord) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, NormalizedRecord{
			RawRecord:  rec,
			Normalized: util.NormalizeToken(rec.Text),
		})
	}
	return out
}
