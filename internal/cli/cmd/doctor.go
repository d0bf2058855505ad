package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Smallest terminal that fits two side by side groups with a tab bar and
// a status line.
const (
	doctorMinCols = 40
	doctorMinRows = 10
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the terminal and configuration before running the host",
	Long: `Doctor checks that the current terminal can run the dock host and
that the configuration and log directory are usable.

Terminal checks:
  - stdout is a terminal of at least 40x10 cells
  - TERM supports mouse reporting
  - colour profile

Configuration checks:
  - config file exists and passes validation
  - log directory is writable

Examples:
  dockyard doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorEnv is everything the checks look at, gathered up front.
type doctorEnv struct {
	cols, rows int
	sizeErr    error
	term       string
	profile    termenv.Profile
	configFile string
	configErr  error
	cfg        *config.Config
	logDir     string
	logDirErr  error
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	env := doctorEnv{
		term:    os.Getenv("TERM"),
		profile: termenv.NewOutput(os.Stdout).EnvColorProfile(),
		cfg:     app.Config,
	}
	env.cols, env.rows, env.sizeErr = terminalSize(os.Stdout)
	if app.ConfigMgr != nil {
		env.configFile = app.ConfigMgr.ConfigFile()
		if _, err := os.Stat(env.configFile); err != nil {
			env.configErr = err
		}
	} else {
		env.configErr = fmt.Errorf("config location unavailable")
	}
	env.logDir, env.logDirErr = logDirStatus(app.Paths)

	report := buildDoctorReport(env)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OK() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func buildDoctorReport(env doctorEnv) styles.DoctorReport {
	return styles.DoctorReport{Sections: []styles.DoctorSection{
		{Title: "Terminal", Icon: styles.IconTerm, Checks: terminalChecks(env)},
		{Title: "Configuration", Icon: styles.IconConfig, Checks: configChecks(env)},
	}}
}

func terminalChecks(env doctorEnv) []styles.DoctorCheck {
	size := styles.DoctorCheck{Name: "Size"}
	switch {
	case env.sizeErr != nil:
		size.Status = styles.DoctorFail
		size.Detail = "stdout is not a terminal"
		size.Hint = "run dockyard from an interactive terminal"
	case env.cols == 0 && env.rows == 0:
		size.Status = styles.DoctorWarn
		size.Detail = "unknown on this platform"
	case env.cols < doctorMinCols || env.rows < doctorMinRows:
		size.Status = styles.DoctorWarn
		size.Detail = fmt.Sprintf("%dx%d", env.cols, env.rows)
		size.Hint = fmt.Sprintf("enlarge the window to at least %dx%d", doctorMinCols, doctorMinRows)
	default:
		size.Detail = fmt.Sprintf("%dx%d", env.cols, env.rows)
	}

	mouse := styles.DoctorCheck{Name: "Mouse", Detail: "TERM=" + env.term}
	if env.term == "" || env.term == "dumb" || strings.HasPrefix(env.term, "vt") {
		mouse.Status = styles.DoctorWarn
		mouse.Hint = "this terminal may not report mouse events, use the keyboard bindings"
	}

	colours := styles.DoctorCheck{Name: "Colours", Detail: profileName(env.profile)}
	if env.profile == termenv.Ascii {
		colours.Status = styles.DoctorWarn
		colours.Hint = "drop zones and the preview are drawn without colour"
	}

	return []styles.DoctorCheck{size, mouse, colours}
}

func configChecks(env doctorEnv) []styles.DoctorCheck {
	file := styles.DoctorCheck{Name: "Config file", Detail: env.configFile}
	if env.configErr != nil {
		file.Status = styles.DoctorWarn
		file.Detail = "not found, using defaults"
		file.Hint = "run 'dockyard config migrate' after creating one"
	}

	valid := styles.DoctorCheck{Name: "Validation", Detail: "passed"}
	if err := config.Validate(env.cfg); err != nil {
		valid.Status = styles.DoctorFail
		valid.Detail = err.Error()
		valid.Hint = "see 'dockyard config keys' for allowed values"
	}

	logs := styles.DoctorCheck{Name: "Log directory", Detail: env.logDir}
	if env.logDirErr != nil {
		logs.Status = styles.DoctorWarn
		logs.Detail = env.logDirErr.Error()
		logs.Hint = "set logging.enable_file_log = false to silence session logs"
	}

	return []styles.DoctorCheck{file, valid, logs}
}

// logDirStatus resolves the session log directory and checks that a file
// can be created in it.
func logDirStatus(paths port.XDGPaths) (string, error) {
	dir, err := paths.LogDir()
	if err != nil {
		return "", err
	}
	return dir, checkWritable(dir)
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true colour"
	case termenv.ANSI256:
		return "256 colours"
	case termenv.ANSI:
		return "16 colours"
	default:
		return "no colour"
	}
}
