// Command regexctl is a command-line front end for the eventrex regex
// engine: match, search, sub, and split a pattern against text, render
// a compiled NFA as a dot graph, or drive a concurrent benchmark run.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/eventrex/emit"
	"github.com/dshills/eventrex/regex"
	"github.com/dshills/eventrex/sim"
	"github.com/dshills/eventrex/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "match":
		err = runMatch(os.Args[2:])
	case "search":
		err = runSearch(os.Args[2:])
	case "sub":
		err = runSub(os.Args[2:])
	case "split":
		err = runSplit(os.Args[2:])
	case "viz":
		err = runViz(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "regexctl: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: regexctl <subcommand> [args]

flags must precede positional arguments, as with any stdlib flag.FlagSet.

subcommands:
  match   <pattern> <text>
  search  <pattern> <text>
  sub     [-count N] <pattern> <repl> <text>
  split   [-maxsplit N] <pattern> <text>
  viz     <pattern>
  bench   [-n N] [-workers N] [-metrics-addr addr] [-store path] [-tracing] <pattern> <text>`)
}

func runMatch(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: regexctl match <pattern> <text>")
	}
	re, err := regex.Compile(args[0])
	if err != nil {
		return err
	}
	span, ok, err := re.Match(context.Background(), args[1])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no match")
		return nil
	}
	fmt.Printf("(%d, %d) %q\n", span.Start, span.End, args[1][span.Start:span.End])
	return nil
}

func runSearch(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: regexctl search <pattern> <text>")
	}
	re, err := regex.Compile(args[0])
	if err != nil {
		return err
	}
	span, ok, err := re.Search(context.Background(), args[1])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no match")
		return nil
	}
	fmt.Printf("(%d, %d) %q\n", span.Start, span.End, args[1][span.Start:span.End])
	return nil
}

func runSub(args []string) error {
	fs := flag.NewFlagSet("sub", flag.ContinueOnError)
	count := fs.Int("count", 0, "maximum replacements (0 defaults to len(repl), matching the source)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("usage: regexctl sub [-count N] <pattern> <repl> <text>")
	}
	re, err := regex.Compile(rest[0])
	if err != nil {
		return err
	}
	out, err := re.Sub(context.Background(), rest[1], rest[2], *count)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runSplit(args []string) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	maxsplit := fs.Int("maxsplit", 0, "maximum splits (0 defaults to len(text), effectively unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: regexctl split [-maxsplit N] <pattern> <text>")
	}
	re, err := regex.Compile(rest[0])
	if err != nil {
		return err
	}
	parts, err := re.Split(context.Background(), rest[1], *maxsplit)
	if err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Printf("%q\n", p)
	}
	return nil
}

func runViz(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: regexctl viz <pattern>")
	}
	re, err := regex.Compile(args[0])
	if err != nil {
		return err
	}
	fmt.Println(re.Visualize())
	return nil
}

// runBench compiles pattern once and fans out n independent Match calls
// across bounded concurrent workers, reporting match rate and wall-clock
// duration. Every worker runs its own single-threaded simulation against
// the shared, read-only compiled graph.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	n := fs.Int("n", 1000, "number of simulation runs")
	workers := fs.Int("workers", 8, "maximum concurrent workers")
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) until the run completes")
	storePath := fs.String("store", "", "if set, persist per-run match telemetry to this SQLite file")
	tracing := fs.Bool("tracing", false, "if set, emit an OpenTelemetry span per dispatched event instead of log lines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: regexctl bench [-n N] [-workers N] [-metrics-addr addr] [-store path] [-tracing] <pattern> <text>")
	}
	pattern, text := rest[0], rest[1]

	registry := prometheus.NewRegistry()
	metrics := sim.NewMetrics(registry)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			fmt.Fprintf(os.Stderr, "bench: metrics listening on %s\n", *metricsAddr)
			_ = server.ListenAndServe()
		}()
		defer server.Close()
	}

	var st store.Store
	if *storePath != "" {
		sqliteStore, err := store.NewSQLiteStore(*storePath)
		if err != nil {
			return err
		}
		defer sqliteStore.Close()
		st = sqliteStore
	}

	re, err := regex.Compile(pattern)
	if err != nil {
		return err
	}
	re.Sim().SetMetrics(metrics)

	var under emit.Emitter = emit.NewLogEmitter(os.Stdout, true)
	if *tracing {
		tp := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(tp)
		defer func() { _ = tp.Shutdown(context.Background()) }()
		under = emit.NewOTelEmitter(otel.Tracer("regexctl"))
	}
	buffered := emit.NewBufferedEmitter(under, 256)
	re.Sim().SetEmitter(buffered)

	if st != nil {
		if err := st.SaveCompiled(context.Background(), regex.CacheRecordFor(re)); err != nil {
			fmt.Fprintf(os.Stderr, "bench: failed to record compile: %v\n", err)
		}
	}

	ctx := context.Background()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	matched := make([]bool, *n)
	start := time.Now()
	for i := 0; i < *n; i++ {
		i := i
		g.Go(func() error {
			runStart := time.Now()
			span, ok, err := re.Match(gctx, text)
			if err != nil {
				return err
			}
			matched[i] = ok
			if st != nil {
				rec := store.MatchTelemetry{
					ID:       uuid.NewString(),
					Pattern:  pattern,
					TextLen:  len(text),
					Matched:  ok,
					Start:    span.Start,
					End:      span.End,
					Outcome:  "completed",
					Duration: time.Since(runStart),
					RanAt:    time.Now(),
				}
				if err := st.RecordMatch(gctx, rec); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := buffered.Flush(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bench: flush failed: %v\n", err)
	}

	hits := 0
	for _, ok := range matched {
		if ok {
			hits++
		}
	}
	fmt.Printf("runs=%d matched=%d elapsed=%s rate=%.2f/s\n",
		*n, hits, elapsed, float64(*n)/elapsed.Seconds())
	if *metricsAddr != "" {
		fmt.Printf("metrics were served on %s; re-scrape before the process exits\n", *metricsAddr)
	}
	if *storePath != "" {
		fmt.Printf("match telemetry persisted to %s\n", *storePath)
	}
	return nil
}
