package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/internal/checklist/repository/cache"
	"weekly-checklist/internal/checklist/repository/filestore"
	"weekly-checklist/internal/checklist/repository/sqlite"
	"weekly-checklist/internal/checklist/usecase"
	"weekly-checklist/internal/render"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
)

type options struct {
	dataDir  string
	dbPath   string
	timezone string
	verbose  bool
}

// env is what every subcommand works against.
type env struct {
	uc    checklist.UseCase
	close func()
}

func (o *options) open() (*env, error) {
	l := log.NewNop()
	if o.verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	calendar, err := datemath.NewCalendar(o.timezone)
	if err != nil {
		return nil, err
	}
	var store repository.Repository
	closeStore := func() {}
	if o.dbPath != "" {
		db, err := sqlite.Open(o.dbPath, l)
		if err != nil {
			return nil, err
		}
		store = sqlite.New(db, l)
		closeStore = func() { db.Close() }
	} else {
		store = filestore.New(o.dataDir, l)
	}

	c, err := cache.New(store, cache.DefaultSize, l)
	if err != nil {
		closeStore()
		return nil, err
	}
	return &env{uc: usecase.New(store, c, calendar, l), close: closeStore}, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "checklistctl",
		Short: "Manage weekly checklists on disk",
		Long: `Manage the weekly checklist data directory directly.

Subcommands:
  import  - Import a checklist JSON file for a week
  export  - Print a stored checklist as JSON
  list    - List stored weeks
  render  - Print the HTML page for a week
  week    - Print the current (or shifted) week id`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "data/checklists", "checklist data directory")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "use the SQLite database at this path instead of --data-dir")
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "Local", "IANA timezone that decides the current week")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log storage activity to stderr")

	root.AddCommand(
		newImportCmd(opts),
		newExportCmd(opts),
		newListCmd(opts),
		newRenderCmd(opts),
		newWeekCmd(opts),
	)
	return root
}

func newImportCmd(opts *options) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import a checklist JSON file for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			body, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out, err := e.uc.Import(cmd.Context(), checklist.ImportInput{WeekID: week, Body: body})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported and saved checklist for week: %s (%d task id(s) generated)\n", out.WeekID, out.AssignedIDs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&week, "week", "w", "", "week id to store under, e.g. 2025-W1")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a stored checklist as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			out, err := e.uc.Export(cmd.Context(), checklist.ExportInput{WeekID: week})
			if err != nil {
				return fmt.Errorf("export %s: %w", week, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Checklist)
		},
	}
	cmd.Flags().StringVarP(&week, "week", "w", "", "week id, e.g. 2025-W1")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()

			out, err := e.uc.ListWeeks(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range out.WeekIDs {
				marker := " "
				if id == out.CurrentWeekID {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %-10s %s\n", marker, id, datemath.FormatWeekID(id))
			}
			return nil
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the HTML page for a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			defer e.close()
			renderer, err := render.New()
			if err != nil {
				return err
			}

			out, err := e.uc.View(cmd.Context(), checklist.ViewInput{WeekID: week})
			if err != nil {
				return err
			}
			page, err := renderer.Checklist(out.Checklist, out.WeekID)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), page)
			return err
		},
	}
	cmd.Flags().StringVarP(&week, "week", "w", "", "week id (default: current week)")
	return cmd
}

func newWeekCmd(opts *options) *cobra.Command {
	var shift int
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the current (or shifted) week id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calendar, err := datemath.NewCalendar(opts.timezone)
			if err != nil {
				return err
			}

			id := calendar.CurrentWeekID()
			if shift != 0 {
				if id, err = datemath.ShiftWeekID(id, shift); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, datemath.FormatWeekID(id))
			return nil
		},
	}
	cmd.Flags().IntVar(&shift, "shift", 0, "weeks to move from the current week (negative for past)")
	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

