package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/csheth/studypal/internal/explain"
)

func (a *App) explainCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain <topic...>",
		Short: "Explain a topic once and print the result",
		Long: `Send one topic to the backend and print the explanation.

Example:
  studypal explain Photosynthesis
  studypal explain "Machine Learning" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := explain.NewController(a.client(), a.log)
			controller.Explain(cmd.Context(), strings.Join(args, " "))
			p := explain.Present(controller)

			if p.ErrorMessage != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), colorError.Sprint(p.ErrorMessage))
				return ErrReported
			}
			result, _ := controller.State().Result()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printPresentation(cmd, p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw response as JSON")
	return cmd
}

func printPresentation(cmd *cobra.Command, p explain.Presentation) {
	out := cmd.OutOrStdout()
	heading := colorHeading.Sprint(p.Heading)
	if p.Succeeded {
		heading = colorSuccess.Sprint("●") + " " + heading
	}
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out)
	fmt.Fprintln(out, wordwrap.String(p.Body, wrapWidth()))
	if p.Footer != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, colorMuted.Sprint(p.Footer))
	}
}
