package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	lootgen "github.com/reoring/lootgen"
	"github.com/reoring/lootgen/internal/config"
	"github.com/reoring/lootgen/internal/schemacheck"
	"github.com/reoring/lootgen/loot"
	"github.com/reoring/lootgen/pack"
	"github.com/reoring/lootgen/pregen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "render":
		err = renderCmd(ctx, os.Args[2:])
	case "check":
		err = checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "lootgen:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "lootgen CLI\n\nUsage:\n  lootgen render -config lootgen.yaml [-out dir] [-check]\n  lootgen check file.json [file.json ...]\n\nNotes:\n  - render writes every table declared in the configuration into a data pack.\n  - check reports structural problems in loot table JSON files.")
}

func renderCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var cfgPath, out string
	var check bool
	fs.StringVar(&cfgPath, "config", "lootgen.yaml", "configuration file")
	fs.StringVar(&out, "out", "", "pack root directory (overrides output in the configuration)")
	fs.BoolVar(&check, "check", false, "check every table against the schema before writing")
	_ = fs.Parse(args)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if out != "" {
		cfg.Output = out
	}
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	var checker *schemacheck.Checker
	if check {
		if checker, err = schemacheck.New(); err != nil {
			return err
		}
	}

	dir := pack.NewDir(cfg.Output)
	opts := []pack.Option{pack.WithFormat(cfg.Format), pack.WithIndent(cfg.Indent), pack.WithLogger(logger)}
	pool := pregen.New(pregen.WithWorkers(cfg.Workers), pregen.WithLogger(logger))
	for _, def := range cfg.Tables {
		pool.Submit(def.ID.String(), func(context.Context) error {
			table, err := def.Build()
			if err != nil {
				return err
			}
			if checker != nil {
				if err := checkTable(checker, table); err != nil {
					return err
				}
			}
			_, err = pack.AddLootTable(dir, def.ID, table, opts...)
			return err
		})
	}

	logger.Info("rendering loot tables", "tables", pool.Len(), "output", cfg.Output, "format", cfg.Format)
	return pool.Run(ctx)
}

func checkTable(c *schemacheck.Checker, table *loot.Table) error {
	v, err := table.Serialize(lootgen.NewContext())
	if err != nil {
		return err
	}
	return c.Check(v)
}

func checkCmd(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	c, err := schemacheck.New()
	if err != nil {
		return err
	}
	failed := 0
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		err = c.CheckJSON(data)
		if err == nil {
			continue
		}
		iss, ok := schemacheck.AsIssues(err)
		if !ok {
			return fmt.Errorf("%s: %w", path, err)
		}
		failed++
		for _, it := range iss {
			fmt.Printf("%s: %s\n", path, it)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files have issues", failed, fs.NArg())
	}
	return nil
}

func newLogger(level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.Level()}))
}
