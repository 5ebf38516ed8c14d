package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"textclean/internal"
	"textclean/internal/config"
	"textclean/internal/storage"
)

const lastTraceKey = "runs.last_trace_id"

type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
}

// NewProcessingService wraps Clean. db may be nil, in which case runs are
// not recorded.
func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg}
}

type ProcessResult struct {
	TraceID   string
	Clean     CleanResult
	TopLabels []internal.LabelCount
}

func (s *ProcessingService) Process(inputPath, outputPath string) (ProcessResult, error) {
	start := time.Now()
	res, err := Clean(inputPath, outputPath)
	if err != nil {
		return ProcessResult{}, err
	}
	summary := SummarizeLabels(res.Rows)
	trace := traceID()

	if s.db != nil {
		run := internal.RunRow{
			TraceID:     trace,
			InputPath:   inputPath,
			OutputPath:  outputPath,
			KeyPath:     res.KeyPath,
			Format:      string(res.Format),
			Records:     len(res.Rows),
			LabelCounts: summary,
			Timings:     map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		}
		if _, err := s.db.InsertRun(run); err != nil {
			return ProcessResult{}, err
		}
		_ = s.db.SetMetadata(lastTraceKey, trace)
	}

	return ProcessResult{TraceID: trace, Clean: res, TopLabels: TopLabels(summary, s.cfg.SummaryTop)}, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
