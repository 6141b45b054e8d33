package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dkrivenko/trackerd/internal/cli"
	"github.com/dkrivenko/trackerd/internal/cli/backups"
	"github.com/dkrivenko/trackerd/internal/cli/categories"
	"github.com/dkrivenko/trackerd/internal/cli/records"
	"github.com/dkrivenko/trackerd/internal/cli/system"
	"github.com/dkrivenko/trackerd/internal/cli/trackers"
	"github.com/dkrivenko/trackerd/internal/constants"
	errs "github.com/dkrivenko/trackerd/internal/errors"
	"github.com/dkrivenko/trackerd/internal/logger"
	"github.com/dkrivenko/trackerd/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database file path." default:"${db_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init  system.InitCmd `cmd:"" help:"Initialize trackerd storage."`
	Tui   system.TuiCmd  `cmd:"" help:"Launch the interactive tracker board." default:"1"`
	Board cli.BoardCmd   `cmd:"" help:"Show the tracker board for a day."`
	Stats cli.StatsCmd   `cmd:"" help:"Show completion statistics."`

	Tracker struct {
		Add    trackers.TrackerAddCmd    `cmd:"" help:"Add a new tracker."`
		Edit   trackers.TrackerEditCmd   `cmd:"" help:"Edit an existing tracker."`
		Delete trackers.TrackerDeleteCmd `cmd:"" help:"Delete a tracker and its records."`
		List   trackers.TrackerListCmd   `cmd:"" help:"List all trackers."`
	} `cmd:"" help:"Manage trackers."`

	Category categories.CategoryCmd `cmd:"" help:"Manage categories."`

	Done   records.DoneCmd   `cmd:"" help:"Mark a tracker done for a day."`
	Undone records.UndoneCmd `cmd:"" help:"Unmark a tracker for a day."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with categories, weekly schedules and daily completion."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": "v0.1.0",
			"db_path": constants.DefaultDBPath,
		},
	)

	dbPath := expandHome(CLI.DB)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(dbPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := sqlite.NewStore(dbPath)
	appCtx := &cli.Context{Store: store}

	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errs.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
