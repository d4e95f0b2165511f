// Command classboard renders a ranked leaderboard of students for a
// teacher's class-sections.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dkoosis/classboard/internal/config"
	"github.com/dkoosis/classboard/internal/telemetry"
	"github.com/dkoosis/classboard/internal/version"
	"github.com/dkoosis/classboard/pkg/board"
	"github.com/dkoosis/classboard/pkg/roster"
	"github.com/dkoosis/classboard/pkg/storeapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to .classboard.yaml")
		storeURL    = flag.String("store", "", "student store base URL")
		storeKey    = flag.String("key", "", "store API key")
		teacherID   = flag.String("teacher", "", "teacher identifier")
		sections    = flag.String("sections", "", "comma-separated class-sections (e.g. 10-A,10-B)")
		plain       = flag.Bool("plain", false, "print the leaderboard once without the TUI")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("classboard %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	var cfg *config.AppConfig
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		cfg = loaded
	} else {
		cfg = config.Load()
	}

	// Flags win over file and environment.
	if *storeURL != "" {
		cfg.StoreURL = *storeURL
	}
	if *storeKey != "" {
		cfg.StoreAPIKey = *storeKey
	}
	if *teacherID != "" {
		cfg.TeacherID = *teacherID
	}
	if *sections != "" {
		cfg.ClassSections = splitList(*sections)
	}

	if cfg.StoreURL == "" {
		fmt.Fprintln(os.Stderr, "No store URL configured (set store_url in .classboard.yaml or pass -store)")
		return 2
	}

	client := storeapi.NewClient(cfg.StoreURL, cfg.StoreAPIKey)

	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		tel, _ = telemetry.New(false)
	}
	defer tel.Close()

	ctx := context.Background()

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(ctx, client, cfg, tel)
	}

	model := board.New(ctx, board.Options{
		Fetcher:   client,
		TeacherID: cfg.TeacherID,
		Sections:  cfg.ClassSections,
		Theme:     cfg.Theme,
		Observe: func(ev board.FetchEvent) {
			_ = tel.RecordFetch(telemetry.FetchEvent{
				TeacherID:   cfg.TeacherID,
				Sections:    len(cfg.ClassSections),
				RecordCount: ev.Records,
				Duration:    ev.Duration,
				Failed:      ev.Err != nil,
			})
			if cfg.Debug && ev.Err != nil {
				fmt.Fprintf(os.Stderr, "[DEBUG] fetch failed: %v\n", ev.Err)
			}
		},
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runPlain fetches once and prints the leaderboard for pipes and CI.
func runPlain(ctx context.Context, client *storeapi.Client, cfg *config.AppConfig, tel *telemetry.Telemetry) int {
	started := time.Now()
	records, err := client.QueryStudents(ctx, cfg.ClassSections)
	_ = tel.RecordFetch(telemetry.FetchEvent{
		TeacherID:   cfg.TeacherID,
		Sections:    len(cfg.ClassSections),
		RecordCount: len(records),
		Duration:    time.Since(started),
		Failed:      err != nil,
	})
	if err != nil {
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "[DEBUG] fetch failed: %v\n", err)
		}
		fmt.Fprintln(os.Stderr, "Failed to load student data")
		return 1
	}

	view := roster.BuildView(records, roster.FilterSet{}, roster.DefaultSort())
	board.RenderPlain(os.Stdout, view)
	return 0
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
