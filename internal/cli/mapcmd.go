package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/render"
)

// MapOptions holds flags shared by the map subcommands.
type MapOptions struct {
	*RootOptions
	StoreFlags

	StoreID string
}

// ImportResult is the JSON payload of map import.
type ImportResult struct {
	StoreID string `json:"store_id"`
	Cells   int    `json:"cells"`
}

// NewMapCommand creates the map command and its subcommands.
func NewMapCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Manage store floor plans",
	}
	cmd.AddCommand(newMapImportCommand(rootOpts))
	cmd.AddCommand(newMapShowCommand(rootOpts))
	cmd.AddCommand(newMapListCommand(rootOpts))

	return cmd
}

func newMapImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MapOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "import <plan.yaml>...",
		Short: "Create or replace floor plans from YAML files",
		Long: `Create or replace floor plans from YAML files. A plan without store_id is
stored under its file name without extension.

Example:
  shoproute map import --db plans.db store-1.yaml store-2.yaml
  shoproute map import --db plans.db --store downtown layout.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMapImport(opts, cmd, args)
		},
	}
	cmd.Flags().StringVarP(&opts.StoreID, "store", "s", "", "store id override (single file only)")
	opts.StoreFlags.register(cmd)

	return cmd
}

func runMapImport(opts *MapOptions, cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()
	out := opts.formatter(cmd)
	log := opts.logger(cmd.ErrOrStderr())
	if opts.StoreID != "" && len(files) > 1 {
		return NewExitError(ExitCommandError, "--store can only be used with a single plan file")
	}

	st, err := opts.StoreFlags.open(ctx, opts.RootOptions, log)
	if err != nil {
		return err
	}
	defer st.Close()

	results := make([]ImportResult, 0, len(files))
	for _, path := range files {
		plan, err := floorplan.Load(path)
		if err != nil {
			return out.Fail("failed to read floor plan", err)
		}
		switch {
		case opts.StoreID != "":
			plan.StoreID = opts.StoreID
		case plan.StoreID == "":
			plan.StoreID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if err = st.SaveFloorPlan(ctx, plan); err != nil {
			return out.Fail("failed to save floor plan", err)
		}
		out.VerboseLog("imported %s from %s", plan.StoreID, path)
		results = append(results, ImportResult{StoreID: plan.StoreID, Cells: len(plan.Cells)})
	}

	if out.Format == "json" {
		return out.Success(results)
	}
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "imported store %s (%d cells)\n", r.StoreID, r.Cells)
	}

	return out.Success(sb.String())
}

func newMapShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MapOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw a store's floor plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMapShow(opts, cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.StoreID, "store", "s", "", "store id (required)")
	_ = cmd.MarkFlagRequired("store")
	opts.StoreFlags.register(cmd)

	return cmd
}

func runMapShow(opts *MapOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := opts.formatter(cmd)
	log := opts.logger(cmd.ErrOrStderr())

	st, err := opts.StoreFlags.open(ctx, opts.RootOptions, log)
	if err != nil {
		return err
	}
	defer st.Close()

	plan, err := st.FloorPlan(ctx, opts.StoreID)
	if err != nil {
		return out.Fail("failed to load floor plan", err)
	}
	if out.Format == "json" {
		return out.Success(plan)
	}
	w, h := plan.Dimensions()
	if g := opts.Config.Grid; g.Width > 0 && g.Height > 0 {
		w, h = g.Width, g.Height
	}

	return out.Success(render.Grid(plan, w, h))
}

func newMapListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MapOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stores with a floor plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMapList(opts, cmd)
		},
	}
	opts.StoreFlags.register(cmd)

	return cmd
}

func runMapList(opts *MapOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := opts.formatter(cmd)
	log := opts.logger(cmd.ErrOrStderr())

	st, err := opts.StoreFlags.open(ctx, opts.RootOptions, log)
	if err != nil {
		return err
	}
	defer st.Close()

	ids, err := st.StoreIDs(ctx)
	if err != nil {
		return out.Fail("failed to list stores", err)
	}
	if out.Format == "json" {
		if ids == nil {
			ids = []string{}
		}
		return out.Success(ids)
	}
	if len(ids) == 0 {
		return out.Success("no stores\n")
	}

	return out.Success(strings.Join(ids, "\n") + "\n")
}
