// Package cmd wires the CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/logfile"
	"worklog/internal/report"
	"worklog/internal/session"
	"worklog/internal/sessiondb"
)

var (
	flagDaily  bool
	flagJSON   bool
	flagFormat string
	flagAsOf   string
)

var rootCmd = &cobra.Command{
	Use:   "worklog <logfile>",
	Short: "Summarize time worked from a work session log",
	Long: `worklog parses a work session log and prints how much time was worked
today, this week, this payperiod and in total.

The input is a single YAML log file, or a timer session database when
--format sqlite is given (also selected by a .db/.sqlite extension).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := loadLog(args[0])
		if err != nil {
			return err
		}
		asOf, err := referenceDay()
		if err != nil {
			return err
		}

		rep := report.Build(log)
		summary := rep.Summarize(asOf)

		if flagJSON {
			return printJSON(cmd, rep, summary)
		}
		out := cmd.OutOrStdout()
		if flagDaily {
			fmt.Fprint(out, report.RenderDaily(rep.Days()))
		}
		fmt.Fprint(out, report.RenderSummary(summary))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto", "input format: yaml, sqlite or auto")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "reference day as DD/MM/YYYY (default today)")
	rootCmd.Flags().BoolVarP(&flagDaily, "daily", "d", false, "also print hours for each recorded day")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the summary as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadLog parses the input file, picking the reader from --format or, in auto
// mode, the file extension.
func loadLog(path string) (*session.Log, error) {
	format := strings.ToLower(flagFormat)
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			format = "sqlite"
		default:
			format = "yaml"
		}
	}

	switch format {
	case "yaml":
		return logfile.Parse(path)
	case "sqlite":
		return sessiondb.Read(path)
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or sqlite)", flagFormat)
	}
}

func referenceDay() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	return session.ParseDate(flagAsOf)
}

type bucketJSON struct {
	Hours    float64 `json:"hours"`
	Recorded bool    `json:"recorded"`
}

type summaryJSON struct {
	AsOf       string      `json:"as_of"`
	Today      bucketJSON  `json:"today"`
	ThisWeek   bucketJSON  `json:"this_week"`
	LastWeek   bucketJSON  `json:"last_week"`
	ThisPeriod bucketJSON  `json:"this_payperiod"`
	LastPeriod bucketJSON  `json:"last_payperiod"`
	TotalHours float64     `json:"total_hours"`
	Daily      []dailyJSON `json:"daily,omitempty"`
}

type dailyJSON struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

func printJSON(cmd *cobra.Command, rep *report.Report, s report.Summary) error {
	out := summaryJSON{
		AsOf:       s.AsOf.Format("2006-01-02"),
		Today:      toBucketJSON(s.Today),
		ThisWeek:   toBucketJSON(s.ThisWeek),
		LastWeek:   toBucketJSON(s.LastWeek),
		ThisPeriod: toBucketJSON(s.ThisPeriod),
		LastPeriod: toBucketJSON(s.LastPeriod),
		TotalHours: s.Total.Hours(),
	}
	if flagDaily {
		for _, d := range rep.Days() {
			out.Daily = append(out.Daily, dailyJSON{
				Date:  d.Date.Format("2006-01-02"),
				Hours: d.Total.Hours(),
			})
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func toBucketJSON(b report.Bucket) bucketJSON {
	return bucketJSON{Hours: b.Total.Hours(), Recorded: b.Recorded}
}
