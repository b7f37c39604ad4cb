// cmd/subburst/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"subburst/internal/adapters/output"
	"subburst/internal/core/candidates"
	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	"subburst/internal/core/usecases"
	"subburst/internal/platform/config"
	"subburst/internal/platform/dnsx"
	"subburst/internal/platform/errors"
	"subburst/internal/platform/httpclient"
	"subburst/internal/platform/logx"
	"subburst/internal/platform/ui"
	"subburst/internal/platform/ui/terminal"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Config (help/version se resuelven dentro de Load)
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: subburst -h for help")
		return exitConfig
	}

	// 2. Logger: con UI solo errores, para no pisar la línea de estado
	mode := ui.UIModeCompact
	logger := logx.NewSilent()
	if cfg.Output.UIDisabled {
		mode = ui.UIModeQuiet
		logger = logx.NewWithLevel(logx.ParseLevel(cfg.Core.LogLevel))
	}

	logger.Info("subburst starting",
		"version", version,
		"commit", commit,
		"date", date,
		"target", cfg.Core.Target,
		"workers", cfg.Core.Workers,
		"config_file", cfg.ConfigFile,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	target := domain.NewTarget(cfg.Core.Target)

	strategy, err := candidates.NewStrategy(cfg.StrategySpec())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	// 4. DNS: un limiter compartido por todos los workers
	resolvers := dnsx.NewFactory(dnsx.Config{
		Nameservers: cfg.DNS.Nameservers,
		Timeout:     cfg.DNSTimeout(),
		Limiter:     dnsx.NewLimiter(cfg.DNS.Rate),
	}, logger)

	probe, err := resolvers()
	if err != nil {
		logger.Err(err, "phase", "resolver")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRuntime
	}

	var servers []string
	if s, ok := probe.(interface{ Servers() []string }); ok {
		servers = s.Servers()
	}

	// 5. Wildcard antes de crear el archivo de salida
	if cfg.DNS.WildcardCheck {
		if err := usecases.CheckWildcard(ctx, probe, target); err != nil {
			logger.Err(err, "phase", "wildcard")
			if errors.Is(err, errors.ErrWildcardDetected) {
				fmt.Fprintf(os.Stderr, "Error: wildcard DNS detected: %v (use --no-wildcard to enumerate anyway)\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return exitRuntime
		}
	}

	// 6. Output
	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = output.DefaultPath(target.Root, cfg.OutputFormat())
	}
	writer, err := output.Open(outPath, cfg.OutputFormat())
	if err != nil {
		logger.Err(err, "phase", "output")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRuntime
	}

	// 7. HTTP probe opcional
	var probers ports.ProberFactory
	if cfg.HTTP.Probe {
		httpCfg := httpclient.DefaultConfig()
		httpCfg.Timeout = cfg.HTTPTimeout()
		if cfg.HTTP.UserAgent != "" {
			httpCfg.UserAgent = cfg.HTTP.UserAgent
		}
		probers = httpclient.NewProberFactory(httpCfg, logger)
	}

	presenter := ui.New(mode)
	defer presenter.Close()

	pipeline, err := usecases.NewPipeline(usecases.PipelineOptions{
		Target:    target,
		Strategy:  strategy,
		Workers:   cfg.Core.Workers,
		Resolvers: resolvers,
		Probers:   probers,
		Writer:    writer,
		Notifier:  presenter,
		Logger:    logger,
	})
	if err != nil {
		_ = writer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	var total uint64
	if c, ok := strategy.(interface{ Count() uint64 }); ok {
		total = c.Count()
	}

	presenter.Start(ui.ScanInfo{
		Target:      target.Root,
		Strategy:    strategy.Describe(),
		Total:       total,
		Workers:     cfg.Core.Workers,
		Nameservers: servers,
		Wildcard:    cfg.DNS.WildcardCheck,
		Probe:       cfg.HTTP.Probe,
		Output:      outPath,
		Format:      cfg.Output.Format,
		Progress: func() terminal.Counters {
			s := pipeline.Stats()
			return terminal.Counters{Generated: s.Generated, Resolved: s.Resolved, Hits: s.Hits}
		},
	})

	// 8. Run
	summary, runErr := pipeline.Run(ctx)
	interrupted := errors.Is(runErr, errors.ErrInterrupted)
	for _, st := range pipeline.Registry().Snapshot() {
		logger.Debug("stage final state", "stage", st.ID.String(), "state", st.State.String())
	}

	presenter.Finish(ui.ScanStats{
		Duration:      summary.Elapsed,
		Generated:     summary.Generated,
		Resolved:      summary.Resolved,
		Hits:          summary.Hits,
		WriteFailures: summary.WriteFailures,
		Output:        outPath,
		Interrupted:   interrupted,
	})

	switch {
	case runErr == nil:
		return exitOK
	case interrupted:
		presenter.Warning(fmt.Sprintf("interrupted, partial results kept in %s", outPath))
		return exitRuntime
	default:
		logger.Err(runErr, "phase", "run")
		presenter.Error(runErr.Error())
		return exitRuntime
	}
}

// rootContextWithSignals creates a root context cancelled on SIGINT/SIGTERM.
// A second signal is left to the default handler, so it kills the process.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			signal.Stop(ch)
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
