// Package main is the command-line front end for the go-formula engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	formula "github.com/robbyt/go-formula"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/options"
)

// Set via -ldflags at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "formula",
	Short:         "Evaluate @VALUE formula templates (left-to-right, no operator precedence)",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var evalCmd = &cobra.Command{
	Use:   "eval [formula]",
	Short: "Evaluate a single formula with a bound value",
	Example: `  formula eval --value 5 '@VALUE * 2'
  formula eval --value 21 '(@VALUE + 3) / 4'`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

var batchCmd = &cobra.Command{
	Use:   "batch [jobs.yaml]",
	Short: "Evaluate a YAML file of {name, formula, value} jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("formula version {{.Version}}\n")
	rootCmd.PersistentFlags().String("log-level", "warn", "slog level: debug, info, warn, error")

	evalCmd.Flags().Float64("value", 0, "bound value substituted for @VALUE")
	evalCmd.Flags().Bool("soft", false, "fail-soft: print <no conversion> instead of erroring")

	batchCmd.Flags().Bool("soft", false, "fail-soft: print <no conversion> for failing jobs")

	rootCmd.AddCommand(evalCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logHandler builds the slog handler shared by the engine components,
// writing to stderr so results stay clean on stdout.
func logHandler(cmd *cobra.Command) (slog.Handler, error) {
	levelStr, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}), nil
}

func runEval(cmd *cobra.Command, args []string) error {
	handler, err := logHandler(cmd)
	if err != nil {
		return err
	}

	value, err := cmd.Flags().GetFloat64("value")
	if err != nil {
		return err
	}
	soft, err := cmd.Flags().GetBool("soft")
	if err != nil {
		return err
	}

	if soft {
		converter := arith.NewValueConverter(handler)
		fmt.Fprintln(cmd.OutOrStdout(), converter.Convert(value, args[0]))
		return nil
	}

	evaluator, err := formula.FromString(
		args[0],
		options.WithLogger(handler),
		options.WithValue(value),
	)
	if err != nil {
		return err
	}

	resp, err := evaluator.Eval(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Inspect())
	return nil
}

// batchJob is one entry of the YAML jobs file.
type batchJob struct {
	Name    string  `yaml:"name"`
	Formula string  `yaml:"formula"`
	Value   float64 `yaml:"value"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	handler, err := logHandler(cmd)
	if err != nil {
		return err
	}
	soft, err := cmd.Flags().GetBool("soft")
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []batchJob
	if err := yaml.Unmarshal(raw, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs file: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file %s contains no jobs", args[0])
	}

	converter := arith.NewValueConverter(handler)

	for i, job := range jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job-%d", i+1)
		}

		if soft {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, converter.Convert(job.Value, job.Formula))
			continue
		}

		result, err := formula.Evaluate(job.Value, job.Formula)
		if err != nil {
			return fmt.Errorf("job %q: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, result)
	}

	return nil
}
