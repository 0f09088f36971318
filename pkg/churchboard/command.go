package churchboard

// Command represents a discrete application operation. Each implementation
// carries the options for its operation; the application layer routes
// execution through [App] based on the concrete type.
type Command interface {
	// Name returns the CLI sub-command this command corresponds to.
	Name() string
}

// MigrateCommand applies the database schema via GORM AutoMigrate. It is
// idempotent: existing tables and columns are left alone, missing ones are
// created.
type MigrateCommand struct{}

// Name returns "migrate".
func (c *MigrateCommand) Name() string {
	return "migrate"
}

// RunCommand starts the HTTP server and blocks until the context is
// cancelled or the server fails.
type RunCommand struct{}

// Name returns "run".
func (c *RunCommand) Name() string {
	return "run"
}
