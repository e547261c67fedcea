package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/2beens/gymload/internal/gymstats/analysis"
	"github.com/2beens/gymload/internal/logging"
	"github.com/2beens/gymload/internal/workload"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	planPath      string
	logLevel      string
	reportMissing bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "analyze",
		Short:         "Analyze muscle workload of a training plan",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logging.GetLevel(opts.logLevel))
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&opts.planPath, "plan", "p", "", "plan file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")
	_ = rootCmd.MarkPersistentFlagRequired("plan")

	programCmd := &cobra.Command{
		Use:   "program",
		Short: "Analyze all days of the plan as one weekly program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadValidPlan(opts.planPath)
			if err != nil {
				return err
			}
			analyzer := workload.NewAnalyzer(workload.Options{ReportMissingMuscles: opts.reportMissing})
			res := analyzer.Analyze(plan.Days, plan.Database())
			if res.SkippedEntries > 0 {
				log.Warnf("skipped %d planned entries with unknown exercises", res.SkippedEntries)
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	programCmd.Flags().BoolVar(&opts.reportMissing, "report-missing", false, "warn about muscle groups with no work at all")

	dayCmd := &cobra.Command{
		Use:   "day <index>",
		Short: "Show the muscle distribution of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day index [%s]: %w", args[0], err)
			}
			plan, err := loadValidPlan(opts.planPath)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(plan.Days) {
				return fmt.Errorf("%w: %d of %d", analysis.ErrDayNotFound, index, len(plan.Days))
			}
			return writeJSON(cmd.OutOrStdout(), dayDistribution(plan, index))
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [exercise-id...]",
		Short: "Summarize the muscles of plan exercises, all of them when no id is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadValidPlan(opts.planPath)
			if err != nil {
				return err
			}
			ids := args
			if len(ids) == 0 {
				for _, def := range plan.Definitions {
					ids = append(ids, def.ID)
				}
			}
			for _, id := range ids {
				def, ok := plan.definition(id)
				if !ok {
					return fmt.Errorf("exercise [%s] not found in plan", id)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", def.Name, workload.SummarizeExerciseMuscles(def)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check definitions and planned entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadValidPlan(opts.planPath); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}

	rootCmd.AddCommand(programCmd, dayCmd, summaryCmd, validateCmd)
	return rootCmd
}

func loadValidPlan(path string) (Plan, error) {
	plan, err := loadPlan(path)
	if err != nil {
		return Plan{}, err
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid plan: %w", err)
	}
	return plan, nil
}

func dayDistribution(plan Plan, index int) analysis.DayDistribution {
	return analysis.NewDayDistribution(index, plan.Days[index], plan.Database())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
