// SPDX-License-Identifier: MIT

// Command graphdata generates a synthetic region graph, derives its
// GraphData tensors and prints a per-region summary. With -metrics-addr it
// keeps serving the build metrics on /metrics and a read-only JSON view of
// the dataset under /data until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"github.com/peterbourgon/ff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/graphdata"
	"github.com/katalvlaran/regiongraph/metrics"
	"github.com/katalvlaran/regiongraph/synth"
)

var errBadFlag = errors.New("graphdata: bad flag value")

type cliFlags struct {
	rows, cols  int
	days        int
	ageBuckets  int
	seed        int64
	corrections float64
	commuters   float64
	directed    bool

	backend  string
	dense    bool
	window   int
	popFloor float64
	order    string

	metricsAddr   string
	shutdownGrace time.Duration
	verbosity     int
}

func parseFlags(args []string) (cliFlags, error) {
	cli := cliFlags{}
	fs := flag.NewFlagSet("graphdata", flag.ContinueOnError)

	// Generator
	fs.IntVar(&cli.rows, "rows", 4, "Number of coarse regions (grid rows)")
	fs.IntVar(&cli.cols, "cols", 5, "Fine regions per coarse region (grid columns)")
	fs.IntVar(&cli.days, "days", 60, "Length of the cumulative series")
	fs.IntVar(&cli.ageBuckets, "age-buckets", 16, "Number of population age buckets")
	fs.Int64Var(&cli.seed, "seed", 1, "Random seed; negative disables noise and corrections")
	fs.Float64Var(&cli.corrections, "corrections", 0.05, "Per-day probability of a downward reporting correction")
	fs.Float64Var(&cli.commuters, "commuters", 0.05, "Probability of a long-range mobility link between two regions")
	fs.BoolVar(&cli.directed, "directed", false, "Generate a directed mobility graph")

	// GraphData
	fs.StringVar(&cli.backend, "backend", "", `Array backend name (default "gonum")`)
	fs.BoolVar(&cli.dense, "dense", false, "Store the adjacency matrix densely instead of CSR")
	fs.IntVar(&cli.window, "window", graphdata.DefaultRollingWindow, "Rolling mean window in days")
	fs.Float64Var(&cli.popFloor, "population-floor", graphdata.DefaultPopulationFloor, "Lower bound applied to population counts")
	fs.StringVar(&cli.order, "order", "insertion", "Node index order: insertion or sorted")

	// Server
	fs.StringVar(&cli.metricsAddr, "metrics-addr", "", "Serve /metrics and the /data API on this address after building (optional)")
	fs.DurationVar(&cli.shutdownGrace, "shutdown-grace-period", 5*time.Second, "Grace period for the metrics server shutdown")

	fs.IntVar(&cli.verbosity, "v", 0, "Log verbosity {0-10}")
	fs.String("config", "", "config file (optional)")

	err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("RG"),
	)
	if err != nil {
		return cli, err
	}
	if cli.rows < 1 || cli.cols < 1 || cli.days < 1 || cli.ageBuckets < 1 {
		return cli, fmt.Errorf("rows, cols, days and age-buckets must be positive: %w", errBadFlag)
	}
	if _, err := labelOrder(cli.order); err != nil {
		return cli, err
	}

	return cli, nil
}

func labelOrder(s string) (core.LabelOrder, error) {
	switch s {
	case "insertion", "":
		return core.OrderInsertion, nil
	case "sorted":
		return core.OrderSorted, nil
	}

	return 0, fmt.Errorf("order %q: %w", s, errBadFlag)
}

func main() {
	flag.Set("logtostderr", "true")
	cli, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.CommandLine.Parse(nil)
	if v := flag.Lookup("v"); v != nil {
		v.Value.Set(strconv.Itoa(cli.verbosity))
	}

	ctx := contextUntilSignal(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if err := run(ctx, cli, os.Stdout); err != nil {
		glog.Fatalf("graphdata failed. err=%q", err)
	}
}

// run builds the graph and its dataset, writes the per-region summary to
// out, and serves metrics when configured.
func run(ctx context.Context, cli cliFlags, out io.Writer) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec := metrics.NewRecorder(reg)

	g, err := generate(cli)
	if err != nil {
		return err
	}
	glog.Infof("Generated region graph. vertices=%d edges=%d", g.VertexCount(), g.EdgeCount())

	order, _ := labelOrder(cli.order)
	opts := []graphdata.Option{
		graphdata.WithSparse(!cli.dense),
		graphdata.WithRollingWindow(cli.window),
		graphdata.WithPopulationFloor(cli.popFloor),
		graphdata.WithOrder(order),
		graphdata.WithRecorder(rec),
	}
	if cli.backend != "" {
		opts = append(opts, graphdata.WithBackendName(cli.backend))
	}
	gd, err := graphdata.New(g, opts...)
	if err != nil {
		return err
	}
	st := gd.Stats()
	glog.Infof("Built graph data. backend=%s nodes=%d steps=%d ages=%d nnz=%d isolated=%d clippedCases=%d clippedDeaths=%d",
		st.Backend, st.Nodes, st.Steps, st.AgeBuckets, st.AdjacencyNNZ, st.Isolated, st.ClippedCases, st.ClippedDeaths)

	if err := summarize(gd, out); err != nil {
		return err
	}
	if cli.metricsAddr == "" {
		return nil
	}

	glog.Infof("Serving metrics and data. addr=%s", cli.metricsAddr)

	return listenAndServe(ctx, cli.metricsAddr, cli.shutdownGrace, newHandler(gd, rec, reg))
}

func generate(cli cliFlags) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithWeighted()}
	if cli.directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	opts := []synth.Option{
		synth.WithDays(cli.days),
		synth.WithAgeBuckets(cli.ageBuckets),
		synth.WithUniformWeight(0.5, 2),
	}
	if cli.seed >= 0 {
		opts = append(opts, synth.WithSeed(cli.seed), synth.WithCorrections(cli.corrections))
	} else if cli.commuters > 0 && cli.commuters < 1 {
		return nil, fmt.Errorf("commuters=%g needs a seed: %w", cli.commuters, errBadFlag)
	}

	return synth.Build(gopts, opts, synth.Regions(cli.rows, cli.cols), synth.Commuters(cli.commuters))
}

// summarize writes one line per non-empty coarse region.
func summarize(gd *graphdata.GraphData, out io.Writer) error {
	regions, err := coarseSummaries(gd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "region\tpopulation\tcases\tdeaths\tcases/day")
	for _, r := range regions {
		if r.Population == 0 {
			continue
		}
		fmt.Fprintf(w, "%02d\t%.0f\t%.0f\t%.0f\t%.1f\n", r.Coarse, r.Population, r.Cases, r.Deaths, r.CasesPerDay)
	}

	return w.Flush()
}

func listenAndServe(ctx context.Context, addr string, grace time.Duration, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				err = fmt.Errorf("shutdownErr=%w closeErr=%q", err, closeErr)
			}
			return fmt.Errorf("metrics server shutdown error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("metrics server listen and serve error: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

func contextUntilSignal(parent context.Context, sigs ...os.Signal) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, sigs...)
		defer signal.Stop(sigc)
		select {
		case s := <-sigc:
			glog.Infof("Got %s, shutting down", s)
		case <-ctx.Done():
		}
	}()

	return ctx
}
