package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/overflowdemo/internal/report"
)

func runReport(opts *RootOptions, cmd *cobra.Command) error {
	r := report.Build()
	slog.Debug("report built", "sections", len(r.Sections))

	if opts.Format == "json" {
		data, err := r.MarshalCanonical()
		if err != nil {
			return WrapExitError(ExitFailure, "failed to encode report", err)
		}
		f := &OutputFormatter{
			Format:  opts.Format,
			Writer:  cmd.OutOrStdout(),
			TraceID: opts.runIDs().Generate(),
		}
		return f.Success(json.RawMessage(data))
	}

	return r.WriteText(cmd.OutOrStdout())
}
