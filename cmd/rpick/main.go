package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rpick/internal/app"
	"github.com/kk-code-lab/rpick/internal/cache"
	"github.com/kk-code-lab/rpick/internal/catalog"
	"github.com/kk-code-lab/rpick/internal/config"
	"github.com/kk-code-lab/rpick/internal/filter"
	"github.com/kk-code-lab/rpick/internal/logging"
	"github.com/kk-code-lab/rpick/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	exitAccepted  = 0
	exitCancelled = 1
	exitSetup     = 2
)

func printHelp() {
	fmt.Print(`rpick - Incremental picker over a static catalog

USAGE:
    rpick [OPTIONS] [PATH]

PATH is a text file (one item per line), a directory, a JSON array, or "-"
for lines on standard input. The accepted item is printed to stdout.

OPTIONS:
    -h, --help            Show this help message and exit
    -c, --config FILE     Read configuration from FILE
    -f, --format FORMAT   Catalog format: auto, lines, dir, json
    -q, --query TEXT      Start with TEXT typed into the prompt
    -p, --print FIELD     Print name, detail or source of the accepted item
        --lru             Evict least recently used filter results
`)
}

type cliOptions struct {
	help       bool
	configFile string
	overrides  map[string]any
}

var errMissingValue = errors.New("missing value")

// parseArgs maps command-line arguments onto config overrides.
func parseArgs(args []string) (cliOptions, error) {
	opts := cliOptions{overrides: map[string]any{}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		inline, hasInline := "", false
		if strings.HasPrefix(arg, "--") {
			arg, inline, hasInline = strings.Cut(arg, "=")
		}
		value := func(i *int, flag string) (string, error) {
			if hasInline {
				return inline, nil
			}
			if *i+1 >= len(args) {
				return "", fmt.Errorf("%s: %w", flag, errMissingValue)
			}
			*i++
			return args[*i], nil
		}

		switch arg {
		case "-h", "--help":
			opts.help = true
			return opts, nil
		case "-c", "--config":
			v, err := value(&i, arg)
			if err != nil {
				return opts, err
			}
			opts.configFile = v
		case "-f", "--format":
			v, err := value(&i, arg)
			if err != nil {
				return opts, err
			}
			opts.overrides["catalog.format"] = v
		case "-q", "--query":
			v, err := value(&i, arg)
			if err != nil {
				return opts, err
			}
			opts.overrides["ui.query"] = v
		case "-p", "--print":
			v, err := value(&i, arg)
			if err != nil {
				return opts, err
			}
			opts.overrides["ui.print"] = v
		case "--lru":
			opts.overrides["cache.policy"] = string(cache.PolicyLRU)
		case "-":
			opts.overrides["catalog.path"] = arg
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown option %s", arg)
			}
			if _, dup := opts.overrides["catalog.path"]; dup {
				return opts, fmt.Errorf("unexpected argument %s", arg)
			}
			opts.overrides["catalog.path"] = arg
		}
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rpick: %v\n", err)
		return exitSetup
	}
	if cli.help {
		printHelp()
		return exitAccepted
	}

	cfg, err := config.Load(config.Options{File: cli.configFile, Overrides: cli.overrides})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rpick: %v\n", err)
		return exitSetup
	}

	log, err := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rpick: logging disabled: %v\n", err)
		log = logging.Nop()
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	filterMetrics, err := metrics.NewFilter(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rpick: %v\n", err)
		return exitSetup
	}
	if addr := cfg.Metrics.ListenAddr; addr != "" {
		errc := make(chan error, 1)
		srv := metrics.Serve(addr, reg, errc)
		defer func() { _ = srv.Close() }()
		go func() {
			if err := <-errc; err != nil {
				log.Warnw("metrics listener stopped", "addr", addr, "err", err)
			}
		}()
		log.Infow("metrics listening", "addr", addr)
	}

	item, ok, err := pick(cfg, log, filterMetrics)
	if err != nil {
		log.Errorw("setup failed", "err", err)
		fmt.Fprintf(os.Stderr, "rpick: %v\n", err)
		return exitSetup
	}
	if !ok {
		log.Infow("cancelled")
		return exitCancelled
	}

	fmt.Println(item.Field(cfg.UI.Print))
	log.Infow("accepted", "source", item.Source)
	return exitAccepted
}

func pick(cfg *config.Config, log *zap.SugaredLogger, m *metrics.Filter) (catalog.Item, bool, error) {
	format, err := catalog.ParseFormat(cfg.Catalog.Format)
	if err != nil {
		return catalog.Item{}, false, err
	}
	cat, err := catalog.Load(catalog.Source{
		Path:          cfg.Catalog.Path,
		Format:        format,
		NameField:     cfg.Catalog.NameField,
		DetailField:   cfg.Catalog.DetailField,
		IncludeHidden: cfg.Catalog.IncludeHidden,
		Recursive:     cfg.Catalog.Recursive,
	})
	if err != nil {
		return catalog.Item{}, false, err
	}
	log.Infow("catalog loaded", "path", cfg.Catalog.Path, "format", format, "items", cat.Len())

	policy, err := cache.ParsePolicy(cfg.Cache.Policy)
	if err != nil {
		return catalog.Item{}, false, err
	}
	engine, err := filter.New(cat,
		filter.WithCapacity(cfg.Cache.Capacity),
		filter.WithPolicy(policy),
		filter.WithLogger(log),
		filter.WithMetrics(m),
	)
	if err != nil {
		return catalog.Item{}, false, err
	}

	app, err := apppkg.NewApplication(engine, apppkg.Options{
		Query:     cfg.UI.Query,
		Clipboard: cfg.UI.Clipboard,
		Log:       log,
	})
	if err != nil {
		return catalog.Item{}, false, fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	stats := engine.Stats()
	log.Debugw("session stats",
		"map_hits", stats.MapCacheHits,
		"ancestor_builds", stats.AncestorBuilds,
		"full_scans", stats.FullScans,
		"map_evictions", stats.MapEvictions,
	)

	item, ok := app.Result()
	return item, ok, nil
}
