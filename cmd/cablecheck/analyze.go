package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cablecheck/internal/board"
	"cablecheck/internal/driver"
	"cablecheck/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [observation.toml ...]",
	Short: "Classify cable wiring from checked pins",
	Long: `Classify a cable from tester board observations: either pin flags for a
single session, or one or more recorded observation files (directories are
searched for *.toml)`,
	RunE: runAnalyze,
}

// init registers CLI flags for the analyze command. Pin entries accept a
// bare silkscreen label ("D+") or a position-qualified one ("06 D+").
func init() {
	analyzeCmd.Flags().StringArrayP("left", "l", nil, "checked pin on the left row (repeatable)")
	analyzeCmd.Flags().StringArrayP("right", "r", nil, "checked pin on the right row (repeatable)")
	analyzeCmd.Flags().String("left-connector", "", "declared plug on the left end (e.g. \"Type C 3.0\")")
	analyzeCmd.Flags().String("right-connector", "", "declared plug on the right end (e.g. \"Type B 3.0\")")
	analyzeCmd.Flags().String("board", "", "board profile TOML (defaults to the stock board)")
	analyzeCmd.Flags().String("format", "text", "output format (text|json)")
	analyzeCmd.Flags().Int("jobs", 0, "max parallel workers for multiple files (0=auto)")
}

// fileOutput is one entry of the JSON batch payload: either the full report
// or an error string for files that failed to load or translate.
type fileOutput struct {
	Error string `json:"error,omitempty"`
	*report.ResultJSON
}

// runAnalyze executes the "analyze" command: one session assembled from pin
// flags when no files are given, otherwise every observation file in the
// arguments. Exits non-zero when any cable classifies as defective, the way
// broken wiring should fail a scripted check.
func runAnalyze(cmd *cobra.Command, args []string) error {
	leftPins, err := cmd.Flags().GetStringArray("left")
	if err != nil {
		return fmt.Errorf("failed to get left flag: %w", err)
	}

	rightPins, err := cmd.Flags().GetStringArray("right")
	if err != nil {
		return fmt.Errorf("failed to get right flag: %w", err)
	}

	leftConnector, err := cmd.Flags().GetString("left-connector")
	if err != nil {
		return fmt.Errorf("failed to get left-connector flag: %w", err)
	}

	rightConnector, err := cmd.Flags().GetString("right-connector")
	if err != nil {
		return fmt.Errorf("failed to get right-connector flag: %w", err)
	}

	boardPath, err := cmd.Flags().GetString("board")
	if err != nil {
		return fmt.Errorf("failed to get board flag: %w", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	if len(args) > 0 && (len(leftPins) > 0 || len(rightPins) > 0 || leftConnector != "" || rightConnector != "") {
		return fmt.Errorf("pin and connector flags cannot be combined with observation files")
	}

	profile, err := loadProfileFlag(boardPath)
	if err != nil {
		return err
	}

	textOpts := report.TextOpts{Color: useColor}

	runSession := func() (int, error) {
		in := driver.SessionInput{
			LeftChecked:    leftPins,
			RightChecked:   rightPins,
			LeftConnector:  leftConnector,
			RightConnector: rightConnector,
			Profile:        profile,
		}
		res, err := driver.AnalyzeWithOptions(in, driver.AnalyzeOptions{EnableTimings: showTimings})
		if err != nil {
			return 0, err
		}

		renderIdx := -1
		if res.Timer != nil {
			renderIdx = res.Timer.Begin("render")
		}
		if format == "json" {
			err = report.WriteJSON(os.Stdout, &res.Result)
		} else {
			err = report.WriteText(os.Stdout, &res.Result, textOpts)
		}
		if res.Timer != nil {
			res.Timer.End(renderIdx, format)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to render report: %w", err)
		}
		if res.Timer != nil {
			fmt.Fprint(os.Stderr, res.Timer.Summary())
		}

		if res.Result.Classification.Defective() {
			return 1, nil
		}
		return 0, nil
	}

	runFiles := func() (int, error) {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return 0, fmt.Errorf("failed to get jobs flag: %w", err)
		}

		results, err := driver.AnalyzeFiles(cmd.Context(), args, profile, driver.FilesOptions{
			Jobs:          jobs,
			EnableTimings: showTimings,
		})
		if err != nil {
			return 0, fmt.Errorf("analysis failed: %w", err)
		}

		switch format {
		case "text":
			for idx := range results {
				r := &results[idx]
				if idx > 0 {
					fmt.Fprintln(os.Stdout)
				}
				if len(results) > 1 {
					fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
				}
				if r.Err != nil {
					fmt.Fprintf(os.Stdout, "error: %v\n", r.Err)
					continue
				}
				renderIdx := -1
				if r.Timer != nil {
					renderIdx = r.Timer.Begin("render")
				}
				err := report.WriteText(os.Stdout, &r.Result, textOpts)
				if r.Timer != nil {
					r.Timer.End(renderIdx, format)
				}
				if err != nil {
					return 0, fmt.Errorf("failed to render report: %w", err)
				}
			}
		case "json":
			output := make(map[string]fileOutput, len(results))
			for idx := range results {
				r := &results[idx]
				if r.Err != nil {
					output[r.Path] = fileOutput{Error: r.Err.Error()}
					continue
				}
				payload := report.BuildResultJSON(&r.Result)
				output[r.Path] = fileOutput{ResultJSON: &payload}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(output); err != nil {
				return 0, fmt.Errorf("failed to encode reports: %w", err)
			}
		}

		if showTimings {
			for idx := range results {
				if results[idx].Timer != nil {
					fmt.Fprintf(os.Stderr, "%s %s", results[idx].Path, results[idx].Timer.Summary())
				}
			}
		}
		if !quiet && len(results) > 1 {
			fmt.Fprintf(os.Stderr, "analyzed %d observation files (%d defective, %d failed)\n",
				len(results), countDefective(results), countFailed(results))
		}

		return batchExitCode(results), nil
	}

	var exitCode int
	if len(args) == 0 {
		exitCode, err = runSession()
	} else {
		exitCode, err = runFiles()
	}
	if err != nil {
		return err
	}
	if exitCode != 0 {
		// Suppress cobra usage output; the reports already said what is wrong
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func loadProfileFlag(path string) (*board.Profile, error) {
	if path == "" {
		return board.Default(), nil
	}
	profile, err := board.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load board profile: %w", err)
	}
	return profile, nil
}

// batchExitCode decides the process exit for a batch: any defective cable or
// unreadable file means 1.
func batchExitCode(results []driver.FileResult) int {
	for _, r := range results {
		if r.Err != nil || r.Result.Classification.Defective() {
			return 1
		}
	}
	return 0
}

func countDefective(results []driver.FileResult) int {
	n := 0
	for _, r := range results {
		if r.Err == nil && r.Result.Classification.Defective() {
			n++
		}
	}
	return n
}

func countFailed(results []driver.FileResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
