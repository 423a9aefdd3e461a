package check

import (
	"fmt"
	"github.com/myrjola/casefile/internal/casefile"
	"github.com/myrjola/casefile/internal/logging"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

var Group = &cobra.Group{
	ID:    "check",
	Title: "Case authoring",
}

func init() {
	Check.Flags().Bool("verbose", false, "log the pipeline stages to stderr")
}

var Check = &cobra.Command{
	Use:     "check [case directory]",
	GroupID: "check",
	Short:   "Check case files",
	Long:    `Runs every case_<id>.yaml file in the directory through the ingestion pipeline and reports the results`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		logSink := os.Stderr
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
			AddSource:   false,
			Level:       level,
			ReplaceAttr: nil,
		})))

		loader := casefile.NewLoader(logger)
		cases, errStrings := loader.Load(cmd.Context(), dir)

		out := cmd.OutOrStdout()
		for _, c := range cases {
			_, _ = fmt.Fprintf(out, "ok\t%s\t%s\n", c.ID, c.Title)
		}
		for _, errString := range errStrings {
			_, _ = fmt.Fprintf(out, "error\t%s\n", errString)
		}
		_, _ = fmt.Fprintf(out, "%d case(s) validated, %d error(s)\n", len(cases), len(errStrings))

		// A non-empty directory where nothing validated means the game has no
		// playable cases. Make the exit code say so.
		if len(cases) == 0 && len(errStrings) > 0 {
			if files, err := casefile.Discover(dir); err == nil && len(files) > 0 {
				return fmt.Errorf("all %d case file(s) failed validation", len(files))
			}
		}
		return nil
	},
}
