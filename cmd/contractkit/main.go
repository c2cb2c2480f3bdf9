package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/reoring/contractkit"
	"github.com/reoring/contractkit/i18n"
	"github.com/reoring/contractkit/internal/config"
	"github.com/reoring/contractkit/internal/logger"
	"github.com/reoring/contractkit/store"
)

// Exit codes. compat-check, validate and smoke report a failed verdict with
// exitFailure; bad arguments and missing documents use exitUsage.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	args  string // positional argument synopsis
	nargs int
	run   func(a *app, args []string) int
}

var commands = map[string]command{
	"bump":         {"<name> <fromVersion> <toVersion>", 3, bumpCmd},
	"diff":         {"<name> <fromVersion> <toVersion>", 3, diffCmd},
	"compat-check": {"<name> <fromVersion> <toVersion>", 3, compatCmd},
	"validate":     {"<name.version> <file>", 2, validateCmd},
	"list":         {"", 0, listCmd},
	"smoke":        {"", 0, smokeCmd},
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		usage(stderr)
		return exitUsage
	}
	a, rest, code := setup(name, cmd, args[1:], stdout, stderr)
	if a == nil {
		return code
	}
	defer a.close()
	return cmd.run(a, rest)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "contractkit CLI\n\nUsage:")
	for _, name := range []string{"bump", "diff", "compat-check", "validate", "list", "smoke"} {
		fmt.Fprintf(w, "  contractkit %s [flags] %s\n", name, commands[name].args)
	}
	fmt.Fprintln(w, "\nRun 'contractkit <command> -h' for flags.")
}

// app is the per-invocation wiring shared by every subcommand.
type app struct {
	ctx    context.Context
	cfg    config.Config
	log    *zap.Logger
	reg    *prometheus.Registry
	store  *store.Dir
	engine *contractkit.Engine
	stdout io.Writer
	stderr io.Writer
}

func setup(name string, cmd command, args []string, stdout, stderr io.Writer) (*app, []string, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  string
		over     config.Config
		logLevel string
	)
	fs.StringVar(&cfgPath, "config", "", "configuration file (default "+config.DefaultFile+" if present)")
	fs.StringVar(&over.SchemasDir, "schemas", "", "schema directory")
	fs.StringVar(&over.FixturesDir, "fixtures", "", "fixture directory")
	fs.StringVar(&over.Dialect, "dialect", "", "JSON Schema dialect (draft-04, draft-06, draft-07, 2019-09, 2020-12)")
	fs.StringVar(&over.Lang, "lang", "", "report language (en, ja)")
	fs.StringVar(&over.MetricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warning, error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: contractkit %s [flags] %s\n", name, cmd.args)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, exitOK
		}
		return nil, nil, exitUsage
	}
	if fs.NArg() != cmd.nargs {
		fs.Usage()
		return nil, nil, exitUsage
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return nil, nil, exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "schemas":
			cfg.SchemasDir = over.SchemasDir
		case "fixtures":
			cfg.FixturesDir = over.FixturesDir
		case "dialect":
			cfg.Dialect = over.Dialect
		case "lang":
			cfg.Lang = over.Lang
		case "metrics-textfile":
			cfg.MetricsTextfile = over.MetricsTextfile
		case "log-level":
			cfg.Log.Level = logLevel
		}
	})

	dialect, err := contractkit.ParseDialect(cfg.Dialect)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, exitUsage
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return nil, nil, exitUsage
	}
	i18n.SetLanguage(cfg.Lang)

	reg := prometheus.NewRegistry()
	dir := store.NewDir(cfg.SchemasDir, cfg.FixturesDir, contractkit.SchemaOptions{
		IdentityField: cfg.IdentityField,
		IDBase:        cfg.IDBase,
	})
	a := &app{
		ctx:   context.Background(),
		cfg:   cfg,
		log:   log,
		reg:   reg,
		store: dir,
		engine: contractkit.NewEngine(dir,
			contractkit.WithLogger(log),
			contractkit.WithRegisterer(reg),
			contractkit.WithDialect(dialect),
		),
		stdout: stdout,
		stderr: stderr,
	}
	return a, fs.Args(), exitOK
}

func (a *app) close() {
	if a.cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsTextfile, a.reg); err != nil {
			a.log.Warn("writing metrics textfile", zap.String("path", a.cfg.MetricsTextfile), zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// fail prints a one-line diagnostic and maps err to an exit code.
func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "contractkit: %v\n", strings.TrimPrefix(err.Error(), "contractkit: "))
	switch {
	case errors.Is(err, contractkit.ErrNotFound),
		errors.Is(err, contractkit.ErrInvalidIdentity),
		errors.Is(err, contractkit.ErrAmbiguous):
		return exitUsage
	}
	return exitFailure
}

func bumpCmd(a *app, args []string) int {
	name, from, to := args[0], args[1], args[2]
	s, err := a.engine.Bump(a.ctx, name, from, to)
	if err != nil {
		switch {
		case errors.Is(err, contractkit.ErrNotFound):
			fmt.Fprintf(a.stderr, "Source schema not found: %s\n", a.store.SchemaPath(contractkit.Identity{Name: name, Version: from}))
		case errors.Is(err, contractkit.ErrExists):
			fmt.Fprintf(a.stderr, "Destination already exists: %s\n", a.store.SchemaPath(contractkit.Identity{Name: name, Version: to}))
		default:
			a.fail(err)
		}
		return exitFailure
	}
	file := filepath.Base(a.store.SchemaPath(s.Identity))
	data := map[string]string{
		"file":    file,
		"fixture": filepath.Base(a.store.FixturePath(s.Identity)),
		"name":    name,
		"from":    from,
		"to":      to,
	}
	fmt.Fprintln(a.stdout, i18n.T(i18n.BumpCreated, data))
	fmt.Fprintln(a.stdout)
	for _, code := range []string{
		i18n.BumpManualSteps, i18n.BumpStepEdit, i18n.BumpStepFixture,
		i18n.BumpStepDiff, i18n.BumpStepCompat, i18n.BumpStepNotify,
	} {
		fmt.Fprintln(a.stdout, i18n.T(code, data))
	}
	return exitOK
}

func diffCmd(a *app, args []string) int {
	name, from, to := args[0], args[1], args[2]
	d, c, err := a.engine.Diff(a.ctx, name, from, to)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.stdout, i18n.T(i18n.ReportHeader, map[string]string{
		"from": name + "." + from,
		"to":   name + "." + to,
	}))
	fmt.Fprintln(a.stdout, strings.Repeat("─", 50))
	fmt.Fprintln(a.stdout, contractkit.FormatDiff(d, c))
	return exitOK
}

func compatCmd(a *app, args []string) int {
	name, from, to := args[0], args[1], args[2]
	res, err := a.engine.CheckCompatibility(a.ctx, name, from, to)
	if err != nil {
		return a.fail(err)
	}
	data := map[string]string{"from": res.From.String(), "to": res.To.String()}
	if res.Compatible {
		fmt.Fprintln(a.stdout, i18n.T(i18n.CompatPass, data))
		return exitOK
	}
	fmt.Fprintln(a.stdout, i18n.T(i18n.CompatFail, data))
	for _, m := range res.Errors.Messages() {
		fmt.Fprintf(a.stdout, "  %s\n", m)
	}
	return exitFailure
}

func validateCmd(a *app, args []string) int {
	ident, file := args[0], args[1]
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(a.stderr, "contractkit: %v\n", err)
		return exitUsage
	}
	format := contractkit.FormatJSON
	if ext := strings.ToLower(filepath.Ext(file)); ext == ".yaml" || ext == ".yml" {
		format = contractkit.FormatYAML
	}
	inst, err := contractkit.ParseFixture(contractkit.Identity{}, data, format)
	if err != nil {
		return a.fail(err)
	}
	res, err := a.engine.Validate(a.ctx, ident, inst.Value)
	if err != nil {
		return a.fail(err)
	}
	msg := map[string]string{"schema": ident}
	if res.Valid {
		fmt.Fprintln(a.stdout, i18n.T(i18n.ValidateOK, msg))
		return exitOK
	}
	fmt.Fprintln(a.stdout, i18n.T(i18n.ValidateFailed, msg))
	for _, m := range res.Errors.Messages() {
		fmt.Fprintf(a.stdout, "  %s\n", m)
	}
	return exitFailure
}

func listCmd(a *app, _ []string) int {
	ids, err := a.engine.List(a.ctx)
	if err != nil {
		return a.fail(err)
	}
	for _, id := range ids {
		fmt.Fprintln(a.stdout, id)
	}
	return exitOK
}

func smokeCmd(a *app, _ []string) int {
	results, err := a.engine.ValidateFixtures(a.ctx)
	if err != nil {
		return a.fail(err)
	}
	failed := false
	for _, r := range results {
		fixture := filepath.Base(a.store.FixturePath(r.Identity))
		switch {
		case r.MissingSchema:
			failed = true
			fmt.Fprintln(a.stdout, i18n.T(i18n.SmokeMissingSchema, map[string]string{"fixture": fixture}))
		case !r.Result.Valid:
			failed = true
			fmt.Fprintln(a.stdout, i18n.T(i18n.SmokeFailed, map[string]string{"fixture": fixture}))
			for _, m := range r.Result.Errors.Messages() {
				fmt.Fprintf(a.stdout, "  %s\n", m)
			}
		}
	}
	if failed {
		return exitFailure
	}
	fmt.Fprintln(a.stdout, i18n.T(i18n.SmokeOK, map[string]string{"count": strconv.Itoa(len(results))}))
	return exitOK
}
