package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strem-org/strem/pkg/datastream"
	"github.com/strem-org/strem/pkg/matcher"
	"github.com/strem-org/strem/pkg/query"
	"github.com/strem-org/strem/pkg/store"
)

var (
	matchMaxCount  int
	matchChannel   string
	matchExportDir string
	matchOutput    string
	matchQueries   string
	matchQueryID   string
)

// errNoMatch signals a clean run that found nothing; main maps it to
// exit code 1.
var errNoMatch = errors.New("no match")

// stdinName labels matches found on a stream read from standard input.
const stdinName = "-"

func init() {
	rootCmd.Flags().IntVarP(&matchMaxCount, "max-count", "m", 0, "Stop searching a stream after NUM matches")
	rootCmd.Flags().StringVarP(&matchChannel, "channel", "c", "", "Evaluate the sample of this channel (default: first sample)")
	rootCmd.Flags().StringVarP(&matchExportDir, "export", "x", "", "Export matched frames' images into DIR")
	rootCmd.Flags().StringVarP(&matchOutput, "output", "o", "", "Record streams and matches into a SQLite database")
	rootCmd.Flags().StringVar(&matchQueries, "queries", "", "Load named queries from a YAML file")
	rootCmd.Flags().StringVar(&matchQueryID, "query", "", "Use the named query instead of a PATTERN argument")
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, streams, err := resolveInputs(args)
	if err != nil {
		return err
	}

	compiled, err := matcher.Compile(pattern)
	if err != nil {
		return err
	}
	slog.Debug("pattern compiled", "pattern", pattern, "alphabet", compiled.AlphabetSize())

	var db store.Store
	if matchOutput != "" {
		db, err = store.New(store.Config{Path: matchOutput})
		if err != nil {
			return fmt.Errorf("opening output store: %w", err)
		}
		defer db.Close()
	}

	var exporter *datastream.Exporter
	if matchExportDir != "" {
		exporter, err = datastream.NewExporter(matchExportDir, matchChannel)
		if err != nil {
			return err
		}
	}

	pr := newPrinter(cmd.OutOrStdout())
	opts := matcher.Options{MaxCount: matchMaxCount, Channel: matchChannel}

	total := 0
	for _, name := range streams {
		n, err := matchStream(compiled, name, opts, pr, db, exporter)
		if err != nil {
			// Per-stream failures are reported; remaining streams
			// still run.
			slog.Error("stream failed", "stream", name, "err", err)
			continue
		}
		total += n
	}

	if total == 0 {
		return errNoMatch
	}
	return nil
}

// resolveInputs splits args into the pattern source and the stream
// list, honoring --query/--queries.
func resolveInputs(args []string) (string, []string, error) {
	if matchQueryID != "" {
		if matchQueries == "" {
			return "", nil, fmt.Errorf("--query requires --queries FILE")
		}
		queries, err := query.NewLoader().LoadFile(matchQueries)
		if err != nil {
			return "", nil, err
		}
		q, err := query.Find(queries, matchQueryID)
		if err != nil {
			return "", nil, err
		}
		streams := args
		if len(streams) == 0 {
			streams = []string{stdinName}
		}
		return q.Pattern, streams, nil
	}

	if len(args) == 0 {
		return "", nil, fmt.Errorf("missing PATTERN argument (or --query)")
	}

	pattern := args[0]
	streams := args[1:]
	if len(streams) == 0 {
		streams = []string{stdinName}
	}
	return pattern, streams, nil
}

// matchStream runs one stream through the pattern, printing, storing,
// and exporting as configured. Returns the number of matches found.
func matchStream(
	compiled *matcher.Pattern,
	name string,
	opts matcher.Options,
	pr *printer,
	db store.Store,
	exporter *datastream.Exporter,
) (int, error) {
	importer, err := openStream(name)
	if err != nil {
		return 0, err
	}

	var streamID store.StreamID
	if db != nil {
		streamID, err = db.AddStream(name, compiled.Source())
		if err != nil {
			return 0, err
		}
	}

	count := 0
	it := compiled.Match(importer, opts)
	for {
		m, err := it.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count++

		pr.match(name, m)

		if db != nil {
			if err := db.AddMatch(streamID, m.Start, m.End); err != nil {
				return count, err
			}
		}
		if exporter != nil {
			if err := exporter.Export(importer.Window(m.Start, m.End)); err != nil {
				return count, err
			}
		}
	}
}

func openStream(name string) (*datastream.Importer, error) {
	if name == stdinName {
		return datastream.NewImporter(os.Stdin, ".")
	}
	return datastream.Open(name)
}
