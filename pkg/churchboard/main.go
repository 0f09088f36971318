package churchboard

import (
	"context"
	"fmt"
)

// Main is the entry point for the churchboard application. It parses the
// arguments, builds the application, and executes the selected command.
// Callable directly from tests without building the binary.
//
// Configuration comes from flags (see Parse) and these environment
// variables:
//
//	POSTGRES_DSN  - PostgreSQL connection string
//	PORT          - HTTP listen port
func Main(ctx context.Context, args []string) error {
	cmd, config, err := Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	app, err := New(config)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer app.Close()

	switch c := cmd.(type) {
	case *MigrateCommand:
		if err := app.Migrate(ctx, c); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	case *RunCommand:
		if err := app.Run(ctx, c); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown command type: %T", cmd)
	}

	return nil
}
