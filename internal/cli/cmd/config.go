package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var (
	configYes         bool
	configDryRun      bool
	configKeysJSON    bool
	configKeysSection string
	configSchemaFile  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View the effective configuration, list the available keys, export
the JSON schema and migrate the config file to the current defaults.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration dockyard would use right now: the config
file merged with DOCKYARD_* environment overrides and defaults.`,
	RunE: runConfigShow,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Long: `List the keys of config.toml grouped by section, with their type,
default, accepted values and the DOCKYARD_* variable that overrides them.

Examples:
  dockyard config keys
  dockyard config keys --section "drop zones"
  dockyard config keys --json`,
	RunE: runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --write the schema is
saved next to the config file, where TOML language servers pick it up.`,
	RunE: runConfigSchema,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any new settings are available.`,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults and adds any missing settings.

Existing settings are never modified - only missing keys are added with
default values. Keys dockyard does not know are reported and dropped.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configKeysCmd, configSchemaCmd, configStatusCmd, configMigrateCmd)

	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only list the keys of one section")
	configSchemaCmd.Flags().BoolVarP(&configSchemaFile, "write", "w", false, "write the schema next to the config file")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configMigrateCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "show the changes without writing them")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), configFile)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, jsonErr := renderer.RenderJSON(result.Keys)
		if jsonErr != nil {
			return jsonErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaFile {
		configFile, err := config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("resolve config file: %w", err)
		}
		path, err := config.WriteSchemaFile(configFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// newMigrateUseCase resolves the config file and checks it exists. It
// returns nil after printing the reason when there is nothing to migrate.
func newMigrateUseCase(renderer *styles.ConfigRenderer) *usecase.MigrateConfigUseCase {
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	return usecase.NewMigrateConfigUseCase(config.NewMigrator(configFile))
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	uc := newMigrateUseCase(renderer)
	if uc == nil {
		return nil
	}

	result, err := uc.Check(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(result.ConfigFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(result.ConfigFile, len(result.MissingKeys), len(result.UnknownKeys)))
	fmt.Println(renderer.RenderMigrateHint())

	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	uc := newMigrateUseCase(renderer)
	if uc == nil {
		return nil
	}

	ctx := app.Ctx()
	result, err := uc.Check(ctx)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(result.ConfigFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(result.ConfigFile, len(result.MissingKeys), len(result.UnknownKeys)))
	fmt.Println(renderer.RenderMissingKeys(result.MissingKeys))
	if len(result.UnknownKeys) > 0 {
		fmt.Println(renderer.RenderUnknownKeys(result.UnknownKeys))
	}

	if configDryRun {
		fmt.Println(renderer.RenderDiff(result.DiffText))
		return nil
	}

	// If --yes flag, proceed without confirmation
	if configYes {
		return executeMigration(ctx, uc, renderer)
	}

	return runMigrateWithConfirmation(ctx, uc, renderer, app.Theme, result.MissingKeys)
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if len(result.AppliedKeys) > 0 {
		fmt.Println(renderer.RenderMigrationSuccess(len(result.AppliedKeys), result.ConfigFile))
	}

	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	ctx         context.Context
	spinner     spinner.Model
	renderer    *styles.ConfigRenderer
	confirm     styles.ConfirmModel
	state       migrateState
	uc          *usecase.MigrateConfigUseCase
	missingKeys []port.KeyInfo

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
	missingKeys []port.KeyInfo,
) migrateModel {
	prompt := "Rewrite the config file with the current defaults?"
	if len(missingKeys) > 0 {
		prompt = fmt.Sprintf("Add %d settings with default values?", len(missingKeys))
	}

	return migrateModel{
		ctx:         ctx,
		spinner:     styles.NewDefaultSpinner(theme),
		renderer:    renderer,
		confirm:     styles.NewConfirm(theme, prompt),
		state:       migrateStateConfirm,
		uc:          uc,
		missingKeys: missingKeys,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}

		if len(msg.output.AppliedKeys) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.AppliedKeys), msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state == migrateStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				m.state = migrateStateRunning
				return m, m.runMigration()
			}
			// User canceled
			m.quitting = true
			return m, tea.Quit
		}

		return m, cmd
	}

	return m, nil
}

func (m migrateModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	switch m.state {
	case migrateStateDone:
		return m.result
	case migrateStateRunning:
		return m.spinner.View() + " Migrating config..."
	default:
		return m.confirm.View()
	}
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx)
		return migrateResultMsg{output: result, err: err}
	}
}

// runMigrateWithConfirmation runs the migrate with an interactive confirmation dialog.
func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	missingKeys []port.KeyInfo,
) error {
	m := newMigrateModel(ctx, renderer, theme, uc, missingKeys)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
