package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command, which validates a network file
// and prints the resolved grid without rendering anything.
func (c *CLI) checkCommand() *cobra.Command {
	var opts sheetOpts

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a network file and show the resolved grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0], &opts)
		},
	}

	addSheetFlags(cmd, &opts)
	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, input string, opts *sheetOpts) error {
	l, placements, err := c.resolveInput(input, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range placements {
		fmt.Fprintf(out, "%s  %s\n", p.Pos, p.Network.SSID)
	}
	c.Logger.Infof("%d of %d cells filled, all placements valid", len(placements), l.Cells())
	return nil
}
