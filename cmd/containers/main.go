package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/linkedcontainers/internal/command"
	"github.com/Philanthropists/linkedcontainers/internal/config"
	"github.com/Philanthropists/linkedcontainers/internal/logging"
	"github.com/Philanthropists/linkedcontainers/internal/session"
	"github.com/Philanthropists/linkedcontainers/pkg/pipe"
)

const configFile = "containers.json"

var GitCommit string

type Options struct {
	ConfigPath string
	Debug      bool
	TTL        int
	Capacity   int
}

func getOptions() Options {
	defer flag.Parse()

	var options Options

	flag.StringVar(&options.ConfigPath, "config", configFile, "path to the JSON config file")
	flag.BoolVar(&options.Debug, "debug", false, "output debug logs")
	flag.IntVar(&options.TTL, "ttl", -1, "seconds an unused container is kept, 0 keeps it forever (overrides config)")
	flag.IntVar(&options.Capacity, "capacity", -2, "default stack capacity, -1 is unbounded (overrides config)")

	return options
}

func getConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if opts.Debug {
		cfg.Debug = true
	}
	if opts.TTL >= 0 {
		cfg.ContainerTTLSeconds = uint(opts.TTL)
	}
	if opts.Capacity >= config.UnboundedCapacity {
		cfg.StackCapacity = opts.Capacity
	}

	return cfg, cfg.Validate()
}

func getLogger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	return logging.Build(level)
}

type output struct {
	line  int
	value string
	err   error
	skip  bool
}

func run(ctx context.Context, in io.Reader, out io.Writer, interp *command.Interpreter) int {
	log := logging.FromContext(ctx)

	n := 0
	results := pipe.Map(ctx.Done(), pipe.Lines(ctx.Done(), in), func(l pipe.Result[string]) output {
		n++
		if l.Error != nil {
			return output{line: n, err: l.Error}
		}
		if command.Skip(l.Value) {
			return output{line: n, skip: true}
		}

		res := interp.Execute(l.Value)
		return output{line: n, value: res.Value(), err: res.Err()}
	})

	failures := 0
	for o := range results {
		switch {
		case o.err != nil:
			failures++
			log.Debug("line failed", logging.Int(logging.LineKey, o.line), logging.Error(o.err))
			fmt.Fprintf(out, "error: %v\n", o.err)
		case !o.skip:
			fmt.Fprintln(out, o.value)
		}
	}

	return failures
}

func main() {
	opts := getOptions()

	cfg, err := getConfig(opts)
	if err != nil {
		log.Panicf("could not load config: %v", err)
	}

	zl, err := getLogger(cfg.Debug)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	logging.SetCustomGlobalLogger(zl)

	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	version := "dev"
	if len(GitCommit) >= 3 {
		version = GitCommit[:3]
	}
	logger.Debug("starting",
		logging.String("version", version),
		logging.Bool("debug", cfg.Debug),
		logging.Int(logging.CapacityKey, cfg.StackCapacity),
		logging.Duration("ttl", cfg.TTL()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logger.GetContext(ctx)

	registry := session.NewRegistry(session.Options{
		TTL:             cfg.TTL(),
		CleanupInterval: cfg.CleanupInterval(),
	}, logger)
	defer registry.Close()

	interp := command.New(registry, cfg.StackCapacity, logger)

	if failures := run(ctx, os.Stdin, os.Stdout, interp); failures > 0 {
		logger.Warn("some commands failed", logging.Int("failures", failures))
		registry.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
}
