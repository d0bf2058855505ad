package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/logging"
)

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if any key was added or removed.
	NeedsMigration bool
	// MissingKeys contains info about each default key absent from the file.
	MissingKeys []port.KeyInfo
	// UnknownKeys lists keys the file sets but dockyard no longer reads.
	UnknownKeys []string
	// DiffText is a diff-like rendering of the changes.
	DiffText string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AppliedKeys contains the keys that were added or dropped.
	AppliedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase brings an existing config file up to date with the
// current defaults.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports how the config file differs from the defaults.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	out := &CheckConfigMigrationOutput{
		ConfigFile: uc.migrator.ConfigFile(),
		DiffText:   FormatChangesAsDiff(changes),
	}
	if len(changes) == 0 {
		log.Debug().Msg("config is up to date, no migration needed")
		return out, nil
	}

	out.NeedsMigration = true
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			out.MissingKeys = append(out.MissingKeys, uc.migrator.GetKeyInfo(change.Key))
		case port.KeyChangeRemoved:
			out.UnknownKeys = append(out.UnknownKeys, change.Key)
		}
	}

	log.Debug().
		Int("missing_keys", len(out.MissingKeys)).
		Int("unknown_keys", len(out.UnknownKeys)).
		Str("config_file", out.ConfigFile).
		Msg("config migration check completed")

	return out, nil
}

// Execute rewrites the config file when it differs from the defaults.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		return nil, err
	}

	configFile := uc.migrator.ConfigFile()
	if len(changes) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{ConfigFile: configFile}, nil
	}

	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("applied_keys", len(applied)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		AppliedKeys: applied,
		ConfigFile:  configFile,
	}, nil
}

// FormatChangesAsDiff returns changes formatted as a diff for display.
func FormatChangesAsDiff(changes []port.KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Config migration changes:\n\n")

	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			sb.WriteString(fmt.Sprintf("  + %s = %s\n", change.Key, change.Value))
		case port.KeyChangeRemoved:
			sb.WriteString(fmt.Sprintf("  - %s = %s (unknown)\n", change.Key, change.Value))
		}
	}

	return sb.String()
}
