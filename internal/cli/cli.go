package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/megabyte6/calendar-updater/internal/calendar"
	"github.com/megabyte6/calendar-updater/internal/config"
	"github.com/megabyte6/calendar-updater/internal/googleauth"
	"github.com/megabyte6/calendar-updater/internal/homebase"
	"github.com/megabyte6/calendar-updater/internal/logger"
	"github.com/megabyte6/calendar-updater/internal/mystudio"
	"github.com/megabyte6/calendar-updater/internal/schedule"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

var (
	flagSettings string
	flagDryRun   bool
	flagFormat   string
	flagVerbose  bool
)

// Base URLs are package variables so tests can point the run at local
// servers.
var (
	myStudioBaseURL = mystudio.DefaultBaseURL
	homebaseBaseURL = homebase.DefaultBaseURL
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar-updater",
		Short: "Sync today's class schedule to Google Calendar",
		Long: `Logs into MyStudio and Homebase, reads today's classes and instructor
shifts, and creates one Google Calendar event per class.`,
		RunE:          runUpdate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagSettings, "settings", config.DefaultPath, "Path to the settings file")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the events without creating them")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	settings, err := config.Load(flagSettings)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			if err := config.WriteTemplate(flagSettings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s. Please fill it out and run again.\n", flagSettings)
			return nil
		}
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	loc, err := settings.Location()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	day := time.Now().In(loc)

	// Authorize before scraping so a first-time browser prompt happens up
	// front, not after a slow scrape.
	var writer calendar.Writer
	if flagDryRun {
		writer = calendar.NewDryRunWriter(cmd.OutOrStdout())
	} else {
		authed, err := googleauth.Load(ctx,
			settings.GoogleAPI.SecretsFile, settings.GoogleAPI.TokenFile, settings.GoogleAPI.Scopes)
		if err != nil {
			return err
		}
		writer, err = calendar.NewGoogleWriter(ctx,
			settings.GoogleAPI.CalendarID, option.WithHTTPClient(authed))
		if err != nil {
			return err
		}
	}

	create, jr, err := scrapeMyStudio(cmd, settings, day, loc)
	if err != nil {
		return err
	}

	shifts, err := scrapeHomebase(cmd, settings, day, loc)
	if err != nil {
		return err
	}

	schedule.AssignInstructors(create, shifts)
	sessions := schedule.Combine(append(create, jr...)...)

	events := calendar.BuildEvents(sessions,
		settings.Students.Unity, settings.Students.Focus, settings.Timezone)

	if err := calendar.InsertAll(ctx, writer, events); err != nil {
		logger.Error("failed to add events to calendar", nil, err)
		return err
	}

	result := NewResult(sessions, flagDryRun)
	return WriteOutput(cmd.OutOrStdout(), result, format)
}

func scrapeMyStudio(cmd *cobra.Command, settings *config.Settings, day time.Time, loc *time.Location) (create, jr []*schedule.Session, err error) {
	client, err := mystudio.New(myStudioBaseURL)
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	logger.Info("logging into MyStudio", nil)
	if err := client.Login(ctx, settings.MyStudio.Username, settings.MyStudio.Password); err != nil {
		return nil, nil, err
	}

	logger.Info("reading class schedule", nil)
	started := time.Now()
	create, jr, err = client.FetchSessions(ctx, day, loc)
	if err != nil {
		return nil, nil, err
	}
	logger.RecordTiming("scrape.mystudio", time.Since(started))
	logger.Debug("class schedule read", logger.Fields{
		"create_classes": len(create),
		"jr_classes":     len(jr),
	})

	return create, jr, nil
}

func scrapeHomebase(cmd *cobra.Command, settings *config.Settings, day time.Time, loc *time.Location) ([]schedule.Instructor, error) {
	client, err := homebase.New(homebaseBaseURL)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	logger.Info("logging into Homebase", nil)
	if err := client.Login(ctx, settings.Homebase.Username, settings.Homebase.Password); err != nil {
		return nil, err
	}

	logger.Info("reading instructor shifts", nil)
	started := time.Now()
	shifts, err := client.FetchShifts(ctx, day, loc)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("scrape.homebase", time.Since(started))
	logger.Debug("instructor shifts read", logger.Fields{
		"instructors": len(shifts),
	})

	return shifts, nil
}
