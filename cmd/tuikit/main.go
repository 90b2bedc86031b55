package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tuikit/internal/dataset"
	"tuikit/internal/ui"
	"tuikit/internal/ui/uiconst"
)

var (
	dataFiles []string
	pageSize  int
	debug     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuikit",
		Short: "tuikit – terminal UI component browser",
		RunE:  run,
	}

	rootCmd.PersistentFlags().StringSliceVar(&dataFiles, "data", nil, "Dataset YAML files to browse (default: bundled sample)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", uiconst.DefaultPageSize, "Rows per table page")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debug {
		fmt.Println("debug mode enabled")
	}

	// Load datasets: explicit files win, then the data directory,
	// then the bundled sample.
	var datasets []dataset.Dataset
	if len(dataFiles) > 0 {
		loaded, err := dataset.LoadAll(dataFiles)
		if err != nil {
			return fmt.Errorf("failed to load datasets: %w", err)
		}
		datasets = loaded
	} else {
		dir, err := dataset.DefaultDir()
		if err != nil {
			log.Printf("warning: no dataset directory: %v", err)
		} else {
			datasets, err = dataset.LoadDir(dir)
			if err != nil {
				return fmt.Errorf("failed to load dataset directory: %w", err)
			}
		}
	}
	if len(datasets) == 0 {
		datasets = []dataset.Dataset{dataset.Sample()}
	}

	p := tea.NewProgram(ui.NewModel(datasets, pageSize))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
