package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/planner"
	"github.com/katalvlaran/shoproute/render"
)

// RouteOptions holds flags for the route command.
type RouteOptions struct {
	*RootOptions
	StoreFlags

	StoreID  string
	ListPath string
	NoReturn bool
	Render   bool
}

// NewRouteCommand creates the route command.
func NewRouteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RouteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a route for a shopping list",
		Long: `Plan the shortest walk that visits every product of a shopping list.

The list is a YAML (or JSON) file:

  store_id: store-1
  products:
    - product_id: milk
      location: {x: 2, y: 2}

Example:
  shoproute route --db plans.db --list list.yaml
  shoproute route --plans ./plans --store store-1 --list list.yaml --render
  shoproute route --db plans.db --list list.yaml --no-return --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.StoreID, "store", "s", "", "store id (defaults to the list's store_id)")
	cmd.Flags().StringVarP(&opts.ListPath, "list", "l", "", "path to the shopping list (required)")
	cmd.Flags().BoolVar(&opts.NoReturn, "no-return", false, "end the route at the last product")
	cmd.Flags().BoolVar(&opts.Render, "render", false, "draw the route on the floor plan (text format only)")
	_ = cmd.MarkFlagRequired("list")
	opts.StoreFlags.register(cmd)

	return cmd
}

func runRoute(opts *RouteOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := opts.formatter(cmd)
	log := opts.logger(cmd.ErrOrStderr())

	list, err := floorplan.LoadList(opts.ListPath)
	if err != nil {
		return out.Fail("failed to read shopping list", err)
	}
	storeID := opts.StoreID
	if storeID == "" {
		storeID = list.StoreID
	}
	if storeID == "" {
		return NewExitError(ExitCommandError, "no store id: pass --store or set store_id in the list")
	}

	st, err := opts.StoreFlags.open(ctx, opts.RootOptions, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("error closing store", "error", closeErr)
		}
	}()

	popts := append(opts.Config.PlannerOptions(), planner.WithLogger(log))
	if opts.NoReturn {
		popts = append(popts, planner.WithReturnTrip(false))
	}
	p, err := planner.New(st, popts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create planner", err)
	}

	route, err := p.ComputeRoute(ctx, storeID, list)
	if err != nil {
		return out.Fail("no route", err)
	}

	if out.Format == "json" {
		return out.SuccessWithID(route, route.RequestID)
	}
	if opts.Render {
		plan, err := st.FloorPlan(ctx, storeID)
		if err != nil {
			return out.Fail("failed to reload floor plan", err)
		}
		w, h := gridSize(p.Options(), plan)
		return out.Success(render.Route(plan, w, h, route))
	}

	return out.Success(describeRoute(route))
}

// gridSize is the size the planner used for plan.
func gridSize(o planner.Options, plan *floorplan.FloorPlan) (int, int) {
	if o.Width > 0 && o.Height > 0 {
		return o.Width, o.Height
	}

	return plan.Dimensions()
}

// describeRoute is the text rendition of a route: one line per leg.
func describeRoute(r *planner.Route) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "route %s for store %s\n", r.RequestID, r.StoreID)
	fmt.Fprintf(&sb, "start at entrance %s\n", r.Entrance)
	for i, leg := range r.Legs {
		end := leg.Path[len(leg.Path)-1].Point()
		if leg.Return {
			fmt.Fprintf(&sb, "%2d. return to entrance %s, %d cells\n", i+1, end, len(leg.Path))
			continue
		}
		fmt.Fprintf(&sb, "%2d. %s at %s, %d cells\n", i+1, leg.ProductID, end, len(leg.Path))
	}
	fmt.Fprintf(&sb, "total cost %d\n", r.Cost)

	return sb.String()
}
