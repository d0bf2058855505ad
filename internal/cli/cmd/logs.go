package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View application logs",
	Long: `View dockyard logs by session.

Every command run writes a session log when file logging is enabled.
Without arguments, lists all available sessions.
With a session ID (or partial match), shows logs for that session.

Examples:
  dockyard logs                 # List all sessions
  dockyard logs a7b3            # View logs for session ending in 'a7b3'
  dockyard logs -f a7b3         # Follow logs in real-time
  dockyard logs -n 100 a7b3     # Show last 100 lines`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// SessionInfo holds metadata about a log session.
type SessionInfo struct {
	SessionID string
	ShortID   string
	Filename  string
	Path      string
	Size      int64
	ModTime   time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := app.Paths.LogDir()
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}
	out := cmd.OutOrStdout()

	// List sessions if no argument provided
	if len(args) == 0 {
		return listSessions(out, logDir, app.SessionID, app.Theme)
	}

	session, err := findSession(logDir, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
		defer stop()
		return tailSession(ctx, out, session.Path, app.Theme)
	}

	return showSession(out, session.Path, logsLines, app.Theme)
}

// listSessions displays all available log sessions. The session of the
// running command is skipped.
func listSessions(out io.Writer, logDir, current string, theme *styles.Theme) error {
	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}
	sessions = withoutSession(sessions, current)

	if len(sessions) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No sessions found. Run 'dockyard run' to create logs."))
		return nil
	}

	fmt.Fprintln(out, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(out)

	for i := range sessions {
		s := &sessions[i]
		fmt.Fprintf(out, "  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(s.Size))),
		)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Subtle.Render("Use 'dockyard logs <id>' to view a session"))
	return nil
}

func withoutSession(sessions []SessionInfo, id string) []SessionInfo {
	if id == "" {
		return sessions
	}
	kept := sessions[:0]
	for _, s := range sessions {
		if s.SessionID != id {
			kept = append(kept, s)
		}
	}
	return kept
}

// getSessions returns all session log files, sorted by modification time (newest first).
func getSessions(logDir string) ([]SessionInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var sessions []SessionInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		sessionID, ok := logging.ParseSessionFilename(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		sessions = append(sessions, SessionInfo{
			SessionID: sessionID,
			ShortID:   logging.ShortSessionID(sessionID),
			Filename:  entry.Name(),
			Path:      filepath.Join(logDir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})

	return sessions, nil
}

// findSession finds a session by short ID or partial ID match.
func findSession(logDir, query string) (*SessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	queryNormalized := strings.ToLower(strings.TrimSpace(query))

	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, queryNormalized) {
			return &sessions[i], nil
		}
	}

	var matches []SessionInfo
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].SessionID), queryNormalized) {
			matches = append(matches, sessions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for i := range matches {
			ids = append(ids, matches[i].ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession displays the last N lines of a session log.
func showSession(out io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var allLines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		allLines = append(allLines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	start := 0
	if len(allLines) > lines {
		start = len(allLines) - lines
	}

	for _, line := range allLines[start:] {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}

	return nil
}

// tailSession follows a session log until ctx is done. Writes are picked
// up through fsnotify rather than by polling.
func tailSession(ctx context.Context, out io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(logPath); err != nil {
		return fmt.Errorf("watch log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(file)
	pending := ""
	drain := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fmt.Fprintln(out, theme.WarningStyle.Render("log file was rotated or removed"))
				return nil
			}
			if event.Has(fsnotify.Write) {
				if err := drain(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for console-formatted logs
	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG", "TRC"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := ""
	if entry.Time != "" {
		if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
			timeStr = t.Format("15:04:05")
		} else {
			timeStr = entry.Time
		}
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// logsClearCmd clears old session logs.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old session log files.

By default, removes sessions older than the configured logging.max_age
(default 7 days). Use --all to remove all sessions.`,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all session logs")
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := app.Paths.LogDir()
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}

	maxAge := 7
	if app.Config != nil && app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	removed, err := clearSessions(cmd.OutOrStdout(), logDir, app.SessionID, maxAge, logsClearAll, time.Now(), app.Theme)
	if err != nil {
		return err
	}
	app.Logger().Info().Int("removed", removed).Bool("all", logsClearAll).Msg("cleared session logs")
	return nil
}

// clearSessions removes logs older than maxAge days, or all of them, except
// the log of the running session. Returns the number removed.
func clearSessions(out io.Writer, logDir, current string, maxAge int, all bool, now time.Time, theme *styles.Theme) (int, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return 0, err
	}
	sessions = withoutSession(sessions, current)

	if len(sessions) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No logs to clear"))
		return 0, nil
	}

	cutoff := now.AddDate(0, 0, -maxAge)
	var removed int

	for i := range sessions {
		s := &sessions[i]
		if !all && !s.ModTime.Before(cutoff) {
			continue
		}

		if err := os.Remove(s.Path); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), s.ShortID, err)
			continue
		}

		fmt.Fprintf(out, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), s.ShortID, formatSize(s.Size))
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, theme.Subtle.Render(fmt.Sprintf("No sessions older than %d days", maxAge)))
	} else {
		fmt.Fprintf(out, "\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d session(s)", removed)))
	}

	return removed, nil
}
