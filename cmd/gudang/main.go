package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/config"
	"gudang/internal/remote"
	"gudang/internal/store"
	"gudang/internal/telemetry"
	"gudang/internal/ui"
)

const usage = `Usage: gudang [flags] [command]

Inventory client for a spreadsheet-backed store.

Commands:
  tui                  interactive browser (default)
  list [-q query]      print the catalog as a table
  export [-o file]     save the catalog as CSV
  import <file.csv>    send a CSV file to the store

Flags:
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gudang: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadEnv(config.DotEnvFile); err != nil {
		return err
	}
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("gudang", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	command, rest := "tui", fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if command == "tui" {
		if cfg.LogFile != "" {
			f, err := tea.LogToFile(cfg.LogFile, "gudang")
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}
	}

	ctx := context.Background()
	tp, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: telemetry shutdown: %v", err)
		}
	}()

	client, err := remote.NewClient(cfg.Endpoint,
		remote.WithTimeout(cfg.Timeout),
		remote.WithTracer(tp.Tracer()),
	)
	if err != nil {
		return err
	}

	switch command {
	case "tui":
		return runTUI(client, cfg.ExportFile)
	case "list":
		return listCommand(ctx, client, rest, os.Stdout)
	case "export":
		return exportCommand(ctx, client, rest, cfg.ExportFile, os.Stdout)
	case "import":
		return importCommand(ctx, client, rest, os.Stdout)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runTUI(client *remote.Client, exportPath string) error {
	log.Printf("main.runTUI: endpoint %s", client.Endpoint())
	model := ui.NewAppModel(store.New(), client, exportPath).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
