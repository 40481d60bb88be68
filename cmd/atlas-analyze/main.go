// Command atlas-analyze runs the article analysis pipeline over a text
// file, an HTML page, a URL or a JSONL batch and prints the JSON report.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"

	"github.com/GannaSameh/atlas/internal/articles"
	"github.com/GannaSameh/atlas/pkg/atlas"
	"github.com/GannaSameh/atlas/pkg/atlas/config"
	"github.com/GannaSameh/atlas/pkg/atlas/ingest"
	"github.com/GannaSameh/atlas/pkg/atlas/report"
	"github.com/GannaSameh/atlas/pkg/atlas/source"
)

// inputs holds the command line selection of what to analyze.
type inputs struct {
	File    string
	HTML    string
	URL     string
	JSONL   string
	Timeout time.Duration
}

func (in inputs) validate() error {
	n := 0
	for _, v := range []string{in.File, in.HTML, in.URL, in.JSONL} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return errors.New("exactly one of --file, --html, --url or --jsonl is required")
	}
	return nil
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	app := cli.App("atlas-analyze", "Extracts dates, keyword frequencies, locations and a keyword/location co-occurrence graph from an article")
	file := app.String(cli.StringOpt{
		Name:   "file",
		Desc:   "Plain text article to analyze",
		EnvVar: "ATLAS_FILE",
	})
	htmlFile := app.String(cli.StringOpt{
		Name:   "html",
		Desc:   "Saved HTML page; the #bodyContent element is analyzed",
		EnvVar: "ATLAS_HTML",
	})
	url := app.String(cli.StringOpt{
		Name:   "url",
		Desc:   "Article URL to fetch; the #bodyContent element is analyzed",
		EnvVar: "ATLAS_URL",
	})
	jsonl := app.String(cli.StringOpt{
		Name:   "jsonl",
		Desc:   "JSON Lines file of articles ({\"url\",\"title\",\"text\"} per line)",
		EnvVar: "ATLAS_JSONL",
	})
	vocabPath := app.String(cli.StringOpt{
		Name:   "config",
		Desc:   "Vocabulary YAML file",
		EnvVar: "ATLAS_CONFIG",
	})
	stoplistPath := app.String(cli.StringOpt{
		Name:   "stoplist",
		Desc:   "Stoplist YAML file used for the top words list",
		EnvVar: "ATLAS_STOPLIST",
	})
	out := app.String(cli.StringOpt{
		Name:   "out",
		Desc:   "Write the JSON report to this file instead of stdout",
		EnvVar: "ATLAS_OUT",
	})
	timeout := app.Int(cli.IntOpt{
		Name:   "timeout",
		Value:  30,
		Desc:   "HTTP timeout in seconds for --url",
		EnvVar: "ATLAS_HTTP_TIMEOUT_SECONDS",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "log-level",
		Value:  "info",
		Desc:   "Log level (debug, info, warn, error)",
		EnvVar: "LOG_LEVEL",
	})

	app.Action = func() {
		level, err := log.ParseLevel(*logLevel)
		if err != nil {
			log.Fatalf("invalid log level %q: %v", *logLevel, err)
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)

		loader := config.Loader{VocabularyPath: *vocabPath, StoplistPath: *stoplistPath}
		opts, err := loader.Load()
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		engine, err := atlas.New(opts)
		if err != nil {
			log.Fatalf("build pipeline: %v", err)
		}

		in := inputs{
			File:    *file,
			HTML:    *htmlFile,
			URL:     *url,
			JSONL:   *jsonl,
			Timeout: time.Duration(*timeout) * time.Second,
		}

		if err := writeReport(context.Background(), engine, in, *out, log.StandardLogger()); err != nil {
			log.Fatalf("analyze: %v", err)
		}
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// writeReport runs the analysis into outPath, or stdout when outPath is
// empty. The output file is closed before writeReport returns.
func writeReport(ctx context.Context, engine *atlas.Atlas, in inputs, outPath string, logger log.FieldLogger) (err error) {
	if err := in.validate(); err != nil {
		return err
	}
	if outPath == "" {
		return run(ctx, engine, in, os.Stdout, logger)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", outPath, cerr)
		}
	}()

	if err := run(ctx, engine, in, f, logger); err != nil {
		return err
	}
	logger.Infof("report written to %s", outPath)
	return nil
}

// run analyzes the selected input and writes indented JSON to w: a single
// report object, or an array of reports for --jsonl.
func run(ctx context.Context, engine *atlas.Atlas, in inputs, w io.Writer, logger log.FieldLogger) error {
	if err := in.validate(); err != nil {
		return err
	}

	var result any
	switch {
	case in.File != "":
		data, err := os.ReadFile(in.File)
		if err != nil {
			return fmt.Errorf("read %s: %w", in.File, err)
		}
		r, err := engine.AnalyzeArticle(ingest.Article{URL: in.File, BodyText: string(data)})
		if err != nil {
			return err
		}
		result = r

	case in.HTML != "":
		f, err := os.Open(in.HTML)
		if err != nil {
			return fmt.Errorf("open %s: %w", in.HTML, err)
		}
		defer f.Close()
		doc, err := source.Parse(f)
		if err != nil {
			return err
		}
		doc.URL = in.HTML
		r, err := engine.AnalyzeDocument(doc)
		if err != nil {
			return err
		}
		result = r

	case in.URL != "":
		logger.Infof("fetching %s", in.URL)
		doc, err := source.NewFetcher(in.Timeout).Fetch(ctx, in.URL)
		if err != nil {
			return err
		}
		r, err := engine.AnalyzeDocument(doc)
		if err != nil {
			return err
		}
		result = r

	case in.JSONL != "":
		items, err := articles.LoadFromJSONL(in.JSONL, logger)
		if err != nil {
			return err
		}
		reports := make([]report.Report, 0, len(items))
		for i, item := range items {
			r, err := engine.AnalyzeArticle(item.Article())
			if err != nil {
				return fmt.Errorf("item %d: %w", i+1, err)
			}
			reports = append(reports, r)
			if (i+1)%10 == 0 {
				logger.Infof("analyzed %d/%d articles...", i+1, len(items))
			}
		}
		result = reports
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
