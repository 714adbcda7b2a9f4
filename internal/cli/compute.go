package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floatkit/pkg/errors"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	anchor     string   // anchor rect as "x,y,w,h"
	size       string   // floating size as "WxH"
	boundary   string   // boundary rect as "x,y,w,h" (optional)
	place      string   // preferred placement
	strategy   string   // positioning strategy
	offset     float64  // main-axis gap
	padding    float64  // boundary inset for shift
	middleware []string // middleware pipeline by name
	profile    string   // TOML profile path
	asJSON     bool     // emit machine-readable output
}

// computeCommand creates the compute command for one-shot placement runs.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a floating element position",
		Long: `Compute where a floating element should be placed relative to an anchor.

The anchor and boundary are rectangles in "x,y,width,height" form; the
floating element only needs a size in "WIDTHxHEIGHT" form. All values
share one coordinate space with the origin at the top-left and y growing
downward.

A TOML profile (--profile) can provide any of the inputs; explicit flags
override profile values. Without --boundary the position is purely
anchor-relative and no flip or shift adjustment applies.`,
		Example: `  floatkit compute --anchor 380,0,40,20 --size 60x40 --boundary 0,0,800,600 --placement top --offset 8
  floatkit compute --profile tooltip.toml --placement bottom-start
  floatkit compute --anchor 10,10,20,20 --size 50x30 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.anchor, "anchor", "a", "", "anchor rect as x,y,width,height")
	cmd.Flags().StringVarP(&opts.size, "size", "s", "", "floating element size as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&opts.boundary, "boundary", "b", "", "boundary rect as x,y,width,height")
	cmd.Flags().StringVarP(&opts.place, "placement", "p", "", "preferred placement (e.g. bottom-start, top, right-end)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "positioning strategy: absolute or fixed")
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "gap between anchor and floating element")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "minimum distance from the boundary when shifting")
	cmd.Flags().StringSliceVarP(&opts.middleware, "middleware", "m", nil, "adjustment pipeline (default flip,shift)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "TOML profile with scenario inputs")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

// runCompute resolves inputs from the profile and flags, computes the
// placement, and prints the result.
func (c *CLI) runCompute(cmd *cobra.Command, opts computeOpts) error {
	logger := loggerFromContext(cmd.Context())

	inputs, pOpts, err := c.resolveComputeInputs(cmd, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result := placement.Compute(inputs.anchor, inputs.floating, inputs.boundary, pOpts)
	prog.done("Placement computed")

	if opts.asJSON {
		return printResultJSON(result)
	}

	printResult(result, pOpts, inputs.boundary)
	return nil
}

// computeInputs are the three resolved rectangles for a compute run.
type computeInputs struct {
	anchor   geom.Rect
	floating geom.Rect
	boundary geom.Rect
}

// resolveComputeInputs merges the profile (if any) with flags.
// Flags win over profile values; the anchor and floating size are required.
func (c *CLI) resolveComputeInputs(cmd *cobra.Command, opts computeOpts) (computeInputs, placement.Options, error) {
	var (
		inputs      computeInputs
		hasAnchor   bool
		hasFloating bool
	)
	pOpts := placement.DefaultOptions()

	if opts.profile != "" {
		prof, err := LoadProfile(opts.profile)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		pOpts, err = prof.Options(pOpts)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		if prof.Anchor != nil {
			inputs.anchor = prof.Anchor.Rect()
			hasAnchor = true
		}
		if prof.Floating != nil {
			inputs.floating = prof.Floating.Rect()
			hasFloating = true
		}
		if prof.Boundary != nil {
			inputs.boundary = prof.Boundary.Rect()
		}
		c.Logger.Debug("loaded profile", "path", opts.profile)
	}

	if opts.anchor != "" {
		r, err := parseRect(opts.anchor)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		inputs.anchor = r
		hasAnchor = true
	}
	if opts.size != "" {
		w, h, err := parseSize(opts.size)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		inputs.floating = geom.Rect{Width: w, Height: h}
		hasFloating = true
	}
	if opts.boundary != "" {
		r, err := parseRect(opts.boundary)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		inputs.boundary = r
	}

	if !hasAnchor {
		return computeInputs{}, placement.Options{}, errors.New(errors.ErrCodeInvalidRect,
			"anchor is required (--anchor or a profile [anchor] table)")
	}
	if !hasFloating {
		return computeInputs{}, placement.Options{}, errors.New(errors.ErrCodeInvalidRect,
			"floating size is required (--size or a profile [floating] table)")
	}

	if opts.place != "" {
		p, err := placement.Parse(opts.place)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		pOpts.Placement = p
	}
	if opts.strategy != "" {
		s, err := placement.ParseStrategy(opts.strategy)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		pOpts.Strategy = s
	}
	if cmd.Flags().Changed("offset") {
		pOpts.Offset = opts.offset
	}
	if cmd.Flags().Changed("padding") {
		pOpts.Padding = opts.padding
	}
	if cmd.Flags().Changed("middleware") {
		mws, err := parseMiddleware(opts.middleware)
		if err != nil {
			return computeInputs{}, placement.Options{}, err
		}
		pOpts.Middleware = mws
	}

	return inputs, pOpts, nil
}

// =============================================================================
// Output
// =============================================================================

// printResult prints a human-readable placement result.
func printResult(r placement.Result, opts placement.Options, boundary geom.Rect) {
	printSuccess("Placement computed")
	printKeyValue("placement", r.Placement.String())
	printKeyValue("position", fmt.Sprintf("(%g, %g)", r.X, r.Y))
	printKeyValue("strategy", string(r.Strategy))
	printKeyValue("adjustment", adjustmentSummary(opts))
	if r.Placement != opts.Placement || boundary.IsEmpty() {
		printNewline()
	}
	if r.Placement != opts.Placement {
		printInfo("flipped from preferred %s", StyleHighlight.Render(opts.Placement.String()))
	}
	if boundary.IsEmpty() {
		printWarning("no boundary given: flip and shift were skipped")
	}
}

// adjustmentSummary names the adjustment passes active in the pipeline.
func adjustmentSummary(opts placement.Options) string {
	switch {
	case opts.CanFlip() && opts.CanShift():
		return "flip+shift"
	case opts.CanFlip():
		return "flip"
	case opts.CanShift():
		return "shift"
	default:
		return "none"
	}
}

// printResultJSON prints the result as a single JSON object on stdout.
func printResultJSON(r placement.Result) error {
	out := struct {
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		Placement string  `json:"placement"`
		Strategy  string  `json:"strategy"`
	}{
		X:         r.X,
		Y:         r.Y,
		Placement: r.Placement.String(),
		Strategy:  string(r.Strategy),
	}
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(out)
}
