package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <word>",
		Short: "Generate an example sentence for a German word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"word": args[0]}
			var result ExampleResult

			if err := client.Post("/api/v1/example", req, &result); err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
