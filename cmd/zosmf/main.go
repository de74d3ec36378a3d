package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zostools/zosmf-go/internal/config"
	"github.com/zostools/zosmf-go/rest"
	"github.com/zostools/zosmf-go/teamconfig"
	"github.com/zostools/zosmf-go/zosconsole"
	"github.com/zostools/zosmf-go/zosfiles"
	"github.com/zostools/zosmf-go/zosjobs"
	"github.com/zostools/zosmf-go/zoslogs"
	"github.com/zostools/zosmf-go/zosmf"
)

type cliOptions struct {
	configFile  string
	teamConfig  string
	profileName string
	logLevel    string
}

func main() {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "zosmf",
		Short:         "Work with jobs, datasets, consoles and logs through z/OSMF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.teamConfig, "team-config", "", "path to a Zowe team configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.profileName, "profile", "", "team configuration profile name")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newSubmitCommand(opts),
		newStatusCommand(opts),
		newMonitorCommand(opts),
		newDeleteCommand(opts),
		newConsoleCommand(opts),
		newDsnCommand(opts),
		newLogCommand(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newClient(opts *cliOptions) (*rest.Client, zerolog.Logger, error) {
	var connection zosmf.Connection
	logLevel := opts.logLevel

	if opts.teamConfig != "" {
		teamCfg, err := teamconfig.Load(opts.teamConfig)
		if err != nil {
			return nil, zerolog.Logger{}, err
		}
		connection, err = teamCfg.Connection(opts.profileName)
		if err != nil {
			return nil, zerolog.Logger{}, err
		}
	} else {
		cfg, err := config.Load(opts.configFile)
		if err != nil {
			return nil, zerolog.Logger{}, err
		}
		connection = cfg.Connection()
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(lo.Ternary(logLevel == "", "info", logLevel)))
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("invalid log level %s: %w", logLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	return rest.New(connection, nil, logger), logger, nil
}

func newSubmitCommand(opts *cliOptions) *cobra.Command {
	var wait bool
	var waitStatus string

	cmd := &cobra.Command{
		Use:   "submit DATASET",
		Short: "Submit the job held in a dataset or member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := newClient(opts)
			if err != nil {
				return err
			}
			job, err := zosjobs.NewJobSubmit(client).Submit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("submitted %s(%s)\n", job.JobName, job.JobID)
			if !wait {
				return nil
			}

			monitor := zosjobs.NewMonitor(zosjobs.NewJobGet(client), logger)
			result, err := monitor.WaitForStatusCommon(cmd.Context(), zosjobs.MonitorParams{
				JobName: job.JobName,
				JobID:   job.JobID,
				Status:  waitStatus,
			})
			if err != nil {
				return err
			}
			fmt.Printf("job %s(%s) reached %s retcode=%s\n",
				result.Job.JobName, result.Job.JobID, result.Job.Status, result.Job.RetCode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the job to reach the desired status")
	cmd.Flags().StringVar(&waitStatus, "status", zosjobs.DefaultStatus.String(), "status to wait for with --wait")
	return cmd
}

func newStatusCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status JOBNAME JOBID",
		Short: "Show the current status of a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			job, err := zosjobs.NewJobGet(client).GetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s(%s) status=%s type=%s retcode=%s\n",
				job.JobName, job.JobID, job.Status, job.Type, job.RetCode)
			return nil
		},
	}
}

func newMonitorCommand(opts *cliOptions) *cobra.Command {
	var desiredStatus string
	var attempts int
	var watchDelay time.Duration
	var message string

	cmd := &cobra.Command{
		Use:   "monitor JOBNAME JOBID",
		Short: "Wait until a job reaches a status or writes a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := newClient(opts)
			if err != nil {
				return err
			}
			monitor := zosjobs.NewMonitor(zosjobs.NewJobGet(client), logger)
			params := zosjobs.MonitorParams{
				JobName:    args[0],
				JobID:      args[1],
				Status:     desiredStatus,
				Attempts:   lo.ToPtr(attempts),
				WatchDelay: lo.ToPtr(watchDelay),
			}

			if message != "" {
				found, err := monitor.WaitForMessageCommon(cmd.Context(), params, message)
				if err != nil {
					return err
				}
				fmt.Println(lo.Ternary(found, "message found", "message not found"))
				return nil
			}

			result, err := monitor.WaitForStatusCommon(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("job %s(%s) reached %s retcode=%s\n",
				result.Job.JobName, result.Job.JobID, result.Job.Status, result.Job.RetCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&desiredStatus, "status", zosjobs.DefaultStatus.String(), "status to wait for")
	cmd.Flags().IntVar(&attempts, "attempts", zosjobs.DefaultAttempts, "maximum number of status checks")
	cmd.Flags().DurationVar(&watchDelay, "delay", zosjobs.DefaultWatchDelay, "delay between status checks")
	cmd.Flags().StringVar(&message, "message", "", "wait for this message in the job output instead of a status")
	return cmd
}

func newDeleteCommand(opts *cliOptions) *cobra.Command {
	var modifyVersion string

	cmd := &cobra.Command{
		Use:   "delete JOBNAME JOBID",
		Short: "Purge a job and its output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			_, err = zosjobs.NewJobDelete(client).DeleteCommon(cmd.Context(), zosjobs.ModifyJobParams{
				JobName: args[0],
				JobID:   args[1],
				Version: modifyVersion,
			})
			if err != nil {
				return err
			}
			fmt.Printf("deleted %s(%s)\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&modifyVersion, "modify-version", zosjobs.DefaultDeleteVersion, "X-IBM-Job-Modify-Version value (1.0 or 2.0)")
	return cmd
}

func newConsoleCommand(opts *cliOptions) *cobra.Command {
	var consoleName string
	var solicitedKeyword string
	var system string

	cmd := &cobra.Command{
		Use:   "console COMMAND",
		Short: "Issue an MVS console command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			response, err := zosconsole.NewIssueConsole(client).IssueCommandCommon(cmd.Context(), zosconsole.IssueParams{
				Command:          args[0],
				ConsoleName:      consoleName,
				SolicitedKeyword: solicitedKeyword,
				SysplexSystem:    system,
			})
			if err != nil {
				return err
			}
			fmt.Println(response.CommandResponse)
			if solicitedKeyword != "" {
				fmt.Println(lo.Ternary(response.KeywordDetected, "keyword detected", "keyword not detected"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&consoleName, "console", "", "console name, defaults to "+zosconsole.DefaultConsoleName)
	cmd.Flags().StringVar(&solicitedKeyword, "sol-key", "", "keyword to detect in the command response")
	cmd.Flags().StringVar(&system, "system", "", "sysplex system to route the command to")
	return cmd
}

func newDsnCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dsn",
		Short: "Work with datasets",
	}

	listCmd := &cobra.Command{
		Use:   "list LEVEL",
		Short: "List catalogued datasets by level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			datasets, err := zosfiles.NewDsn(client).List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			names := lo.Map(datasets, func(dataset zosfiles.Dataset, _ int) string {
				return dataset.Name
			})
			fmt.Println(strings.Join(names, "\n"))
			return nil
		},
	}

	writeCmd := &cobra.Command{
		Use:   "write DATASET FILE",
		Short: "Replace dataset content with the content of a local file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			content, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			_, err = zosfiles.NewDsn(client).Write(cmd.Context(), args[0], string(content))
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete DATASET",
		Short: "Delete a dataset or member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			_, err = zosfiles.NewDsn(client).Delete(cmd.Context(), args[0])
			return err
		},
	}

	cmd.AddCommand(listCmd, writeCmd, deleteCmd)
	return cmd
}

func newLogCommand(opts *cliOptions) *cobra.Command {
	var timeRange string
	var forward bool
	var syslog bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Retrieve operations or system log data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(opts)
			if err != nil {
				return err
			}
			reply, err := zoslogs.NewZosLog(client).Get(cmd.Context(), zoslogs.GetParams{
				TimeRange:        timeRange,
				Direction:        lo.Ternary(forward, zoslogs.DirectionForward, zoslogs.DirectionBackward),
				HardCopy:         lo.Ternary(syslog, zoslogs.HardCopySyslog, zoslogs.HardCopyOperlog),
				ProcessResponses: true,
			})
			if err != nil {
				return err
			}
			for _, item := range reply.Items {
				fmt.Printf("%s %s %s\n", item.Time, item.JobName, item.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&timeRange, "range", zoslogs.DefaultTimeRange, "time range to cover, e.g. 10m, 2h, 1d")
	cmd.Flags().BoolVar(&forward, "forward", false, "gather forward from the start time")
	cmd.Flags().BoolVar(&syslog, "syslog", false, "read the system log instead of the operations log")
	return cmd
}
