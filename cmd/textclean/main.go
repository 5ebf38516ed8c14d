package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"textclean/internal/config"
	"textclean/internal/pipeline"
	"textclean/internal/storage"
	"textclean/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "input file (csv, tsv, txt, xlsx, html, pdf, eml)")
		output := fs.String("output", cfg.OutputPath, "cleaned_text output path (.xlsx for a workbook)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*output) == "" {
			must(fmt.Errorf("--input and --output are required"))
		}

		var db *storage.DB
		if cfg.RecordRuns {
			db, err = storage.Open(cfg.DBPath)
			must(err)
			defer db.Close()
		}

		svc := pipeline.NewProcessingService(db, cfg)
		res, err := svc.Process(*input, *output)
		must(err)
		fmt.Printf("run done trace=%s format=%s rows=%d output=%s keys=%s\n",
			res.TraceID, res.Clean.Format, len(res.Clean.Rows), *output, res.Clean.KeyPath)
		for _, lc := range res.TopLabels {
			fmt.Printf("  %5d  %s\n", lc.Count, lc.Label)
		}
	case "normalize":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		text := fs.String("text", "", "raw text to normalize")
		_ = fs.Parse(os.Args[2:])
		norm := util.NormalizeToken(*text)
		source := "fallback"
		if pipeline.IsTableKey(norm) {
			source = "table"
		}
		fmt.Printf("normalized=%q label=%q source=%s\n", norm, pipeline.MapLabel(norm), source)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs")
		trace := fs.String("trace", "", "show a single run by trace id")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("DB_PATH", cfg.DBPath))
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		if *trace != "" {
			run, err := db.GetRunByTraceID(*trace)
			must(err)
			if run == nil {
				must(fmt.Errorf("run not found: %s", *trace))
			}
			fmt.Printf("%d %s %s input=%s output=%s keys=%s format=%s rows=%d\n",
				run.ID, run.CreatedAt, run.TraceID, run.InputPath, run.OutputPath, run.KeyPath, run.Format, run.Records)
			for _, lc := range run.LabelCounts {
				fmt.Printf("  %5d  %s\n", lc.Count, lc.Label)
			}
			return
		}
		runs, err := db.ListRuns(*limit)
		must(err)
		if len(runs) == 0 {
			fmt.Println("no runs recorded (set RECORD_RUNS=true)")
			return
		}
		for _, r := range runs {
			fmt.Printf("%d %s %s input=%s output=%s format=%s rows=%d\n",
				r.ID, r.CreatedAt, r.TraceID, r.InputPath, r.OutputPath, r.Format, r.Records)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: textclean <command>")
	fmt.Println("commands:")
	fmt.Println("  run [--input=files/input.txt] [--output=files/output.txt]")
	fmt.Println("  normalize --text=...")
	fmt.Println("  runs:list [--limit=20] [--trace=<id>]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
