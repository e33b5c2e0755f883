package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtik00/wifi-business-cards/pkg/cards"
	"github.com/mtik00/wifi-business-cards/pkg/layout"
	"github.com/mtik00/wifi-business-cards/pkg/render"
)

// sheetOpts holds the flags shared by generate and check.
type sheetOpts struct {
	layoutPath string // TOML geometry override file
	rows       int    // grid row override
	columns    int    // grid column override
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	sheetOpts
	output string // output PDF path; derived from input when empty
	box    bool   // draw card boundaries and cell addresses
}

// generateCommand creates the generate command, which renders the card
// sheet PDF from a JSON network file.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Render a printable card sheet PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default: input name with .pdf)")
	cmd.Flags().BoolVar(&opts.box, "box", false, "draw card boundaries and cell addresses")
	addSheetFlags(cmd, &opts.sheetOpts)

	return cmd
}

// addSheetFlags registers the geometry flags shared by generate and check.
func addSheetFlags(cmd *cobra.Command, opts *sheetOpts) {
	cmd.Flags().StringVar(&opts.layoutPath, "layout", "", "TOML file overriding the page geometry")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "override the number of grid rows")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "override the number of grid columns")
}

// sheetLayout builds the page geometry from the defaults, an optional
// TOML file and the row/column flag overrides, in that order.
func sheetLayout(opts *sheetOpts) (layout.Layout, error) {
	l := layout.Letter()
	if opts.layoutPath != "" {
		var err error
		if l, err = layout.LoadFile(opts.layoutPath); err != nil {
			return layout.Layout{}, err
		}
	}
	if opts.rows > 0 {
		l.Rows = opts.rows
	}
	if opts.columns > 0 {
		l.Columns = opts.columns
	}
	return l, l.Validate()
}

// resolveInput loads the network file and resolves it against the grid.
func (c *CLI) resolveInput(input string, opts *sheetOpts) (layout.Layout, []cards.Placement, error) {
	l, err := sheetLayout(opts)
	if err != nil {
		return layout.Layout{}, nil, err
	}

	records, err := cards.LoadFile(input)
	if err != nil {
		return layout.Layout{}, nil, err
	}
	c.Logger.Debugf("Loaded %d networks from %s", len(records), input)

	placements, err := cards.Resolve(records, l.Rows, l.Columns)
	if err != nil {
		return layout.Layout{}, nil, fmt.Errorf("invalid input:\n%w", err)
	}
	return l, placements, nil
}

func (c *CLI) runGenerate(input string, opts *generateOpts) error {
	l, placements, err := c.resolveInput(input, &opts.sheetOpts)
	if err != nil {
		return err
	}
	c.Logger.Infof("Placing %d cards on a %dx%d grid", len(placements), l.Rows, l.Columns)

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}

	if err := render.SheetFile(output, l, placements, opts.box); err != nil {
		return err
	}
	c.Logger.Infof("Generated %s", output)
	return nil
}
