package churchboard

import "context"

// Migrate applies the database schema for all record types. Safe to run
// repeatedly; see [MigrateCommand].
func (a *App) Migrate(ctx context.Context, cmd *MigrateCommand) error {
	a.logger.Info().Msg("running schema migration")
	if err := a.store.Migrate(ctx); err != nil {
		return err
	}
	a.logger.Info().Msg("schema migration complete")
	return nil
}
