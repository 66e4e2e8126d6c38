// glassinfo looks up optical glasses and prints their properties.
//
// Usage:
//
//	glassinfo [-config path] <command> [args]
//
//	glassinfo index N-BK7 Schott          # indices at the standard lines
//	glassinfo index BK7,Schott,Ohara      # first catalog that has the glass
//	glassinfo decode N-SF57HT S-TIM2      # decoded name parts
//	glassinfo catalogs                    # catalogs and glass counts
//	glassinfo list Ohara                  # glasses of a catalog
//	glassinfo stats Schott                # naming statistics of a catalog
//	glassinfo map Schott                  # glass map coordinates
//	glassinfo model 1.62 36.4 MyFlint     # register and save a model glass
//	glassinfo custom                      # registered custom glasses
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/opticalglass/internal/config"
	"github.com/udisondev/opticalglass/internal/factory"
)

const ConfigPath = "config/glassinfo.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// app is the state shared by the commands.
type app struct {
	cfg     config.Glass
	factory *factory.Factory
	out     io.Writer
}

func run(ctx context.Context, args []string, out io.Writer) error {
	defaultPath := ConfigPath
	if p := os.Getenv("OPTICALGLASS_CONFIG"); p != "" {
		defaultPath = p
	}

	fs := flag.NewFlagSet("glassinfo", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", defaultPath, "path to the YAML config")
	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so command output stays clean.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if fs.NArg() == 0 {
		printUsage(fs)
		return errors.New("no command given")
	}
	name, cmdArgs := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commandByName(name)
	if !ok {
		printUsage(fs)
		return fmt.Errorf("unknown command %q", name)
	}
	if len(cmdArgs) < cmd.minArgs {
		return fmt.Errorf("usage: glassinfo %s %s", cmd.name, cmd.usage)
	}

	a := &app{
		cfg: cfg,
		factory: factory.New(
			factory.WithDefaultCatalogs(cfg.Catalogs...),
			factory.WithHTTPClient(&http.Client{Timeout: cfg.RIndexInfo.Timeout}),
		),
		out: out,
	}
	if err := a.loadCustomGlasses(); err != nil {
		return err
	}

	return cmd.run(ctx, a, cmdArgs)
}

// loadCustomGlasses restores the custom registry if its directory exists.
func (a *app) loadCustomGlasses() error {
	dir := a.cfg.CustomGlassDir
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("no custom glass directory", "dir", dir)
		return nil
	}
	if err := a.factory.LoadCustomGlasses(dir); err != nil {
		return fmt.Errorf("loading custom glasses: %w", err)
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: glassinfo [-config path] <command> [args]")
	fmt.Fprintln(w, "\nCommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %-28s %s\n", c.name, c.usage, c.desc)
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
