package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shoproute/mapstore"
)

// StoreFlags selects a floor-plan store on the command line. Flags override
// the store section of the config.
type StoreFlags struct {
	Database string
	PlansDir string
}

func (s *StoreFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.Database, "db", "", "path to a SQLite floor-plan database")
	cmd.Flags().StringVar(&s.PlansDir, "plans", "", "directory of <store>.yaml floor plans")
	cmd.MarkFlagsMutuallyExclusive("db", "plans")
}

// open returns the store named by the flags, or by the config when no flag
// is set.
func (s *StoreFlags) open(ctx context.Context, root *RootOptions, log *slog.Logger) (mapstore.Store, error) {
	driver, path := root.Config.Store.Driver, root.Config.Store.Path
	switch {
	case s.Database != "":
		driver, path = mapstore.DriverSQLite, s.Database
	case s.PlansDir != "":
		driver, path = mapstore.DriverYAML, s.PlansDir
	}
	log.Debug("opening floor-plan store", "driver", driver, "path", path)
	st, err := mapstore.Open(ctx, driver, path, log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open floor-plan store", err)
	}

	return st, nil
}
