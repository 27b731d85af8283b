package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/csheth/studypal/internal/pdfdoc"
	"github.com/csheth/studypal/internal/studyapi"
)

func (a *App) summarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <file.pdf>",
		Short: "Summarize a PDF section by section",
		Long: `Upload a PDF to the backend and print a summary of each section.

The file must be a text PDF no larger than 10 MiB.

Example:
  studypal summarize ~/notes/lecture-3.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, data, err := pdfdoc.Read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colorMuted.Sprintf("Uploading %s (%s, %d pages, about %d sections)...",
				info.Name, info.HumanSize(), info.Pages, info.Chunks))

			summary, err := a.client().Summarize(cmd.Context(), info.Name, data)
			if err != nil {
				a.log.Error().Err(err).Str("file", info.Name).Msg("summarization failed")
				fmt.Fprintln(cmd.ErrOrStderr(), colorError.Sprint(summarizeFailure(err)))
				return ErrReported
			}
			printSummary(cmd, summary)
			return nil
		},
	}
}

func summarizeFailure(err error) string {
	var statusErr *studyapi.StatusError
	if errors.As(err, &statusErr) && statusErr.Code < 500 && statusErr.Detail != "" {
		return statusErr.Detail
	}
	return "Failed to summarize PDF. Make sure the backend is running."
}

func printSummary(cmd *cobra.Command, s studyapi.Summary) {
	out := cmd.OutOrStdout()
	width := wrapWidth()
	fmt.Fprintln(out, colorSuccess.Sprint("●")+" "+colorHeading.Sprint("Summary: "+s.Filename))
	fmt.Fprintln(out, colorMuted.Sprint(strings.Join([]string{
		fmt.Sprintf("%d sections", s.TotalChunks),
		fmt.Sprintf("%s characters", humanize.Comma(int64(s.TotalCharacters))),
		fmt.Sprintf("%.1fs", s.ProcessingTime),
	}, " • ")))
	if failed := s.FailedChunks(); failed > 0 {
		fmt.Fprintln(out, colorWarn.Sprintf("%d of %d sections could not be summarized", failed, len(s.Summaries)))
	}
	for _, chunk := range s.Summaries {
		fmt.Fprintln(out)
		label := fmt.Sprintf("Section %d", chunk.ChunkID)
		if chunk.Success {
			fmt.Fprintln(out, colorHeading.Sprint(label))
		} else {
			fmt.Fprintln(out, colorWarn.Sprint("⚠ "+label))
		}
		fmt.Fprintln(out, indent.String(wordwrap.String(chunk.Summary, width-2), 2))
	}
}

// pdfSizeLimit is shown by doctor.
func pdfSizeLimit() string {
	return humanize.IBytes(uint64(pdfdoc.MaxUploadBytes))
}
