package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"jdkpulse/internal/config"
	"jdkpulse/internal/jdk"
	"jdkpulse/internal/state"
	"jdkpulse/internal/theme"
	"jdkpulse/internal/updater"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// Version is set during build time via ldflags
var Version = "dev"

// Use JDK-Pulse custom theme
var (
	successStyle = theme.SuccessStyle
	errorStyle   = theme.ErrorStyle
	warningStyle = theme.WarningStyle
	infoStyle    = theme.InfoStyle
	titleStyle   = theme.Title
	currentStyle = theme.CurrentStyle
)

var jsonOutput *bool

func main() {
	jsonOutput = pflag.BoolP("json", "j", false, "Output machine-readable JSON instead of the themed view")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || pflag.NArg() == 0 {
		printUsage()
		if pflag.NArg() == 0 && !*helpFlag {
			os.Exit(1)
		}
		return
	}

	command := pflag.Arg(0)

	switch command {
	case "list":
		handleList()
	case "use":
		handleUse()
	case "switch":
		handleSwitch()
	case "current":
		handleCurrent()
	case "default":
		handleDefault()
	case "doctor":
		handleDoctor()
	case "update":
		handleUpdate()
	case "version":
		printVersion()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	checkForUpdateBackground()
}

// newRegistry builds the JDK registry, honoring the config's jenv root override.
func newRegistry(cfg *config.Config) *jdk.Registry {
	root := cfg.JenvRoot
	if root == "" {
		root = jdk.DefaultJenvRoot()
	}
	return jdk.NewRegistry(root)
}

// newStore builds the active-selection store, honoring the config's state-file
// override.
func newStore(cfg *config.Config, reg *jdk.Registry) *state.Store {
	path := cfg.StateFile
	if path == "" {
		path = state.DefaultPath()
	}
	return state.NewStore(path, reg.List)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(warningStyle.Render("Warning: could not read config, using defaults: " + err.Error()))
		cfg = &config.Config{}
	}
	return cfg
}

func handleList() {
	cfg := loadConfig()
	reg := newRegistry(cfg)
	store := newStore(cfg, reg)

	var records []jdk.Record
	var scanErr error

	if *jsonOutput {
		records, scanErr = reg.List()
	} else {
		// Scan with spinner
		jdk.WithScanner(func() error {
			records, scanErr = reg.List()
			return nil
		})
	}

	if scanErr != nil {
		fmt.Println(errorStyle.Render("Error finding JDK installations: " + scanErr.Error()))
		os.Exit(1)
	}

	if *jsonOutput {
		if records == nil {
			records = []jdk.Record{}
		}
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			fmt.Println(errorStyle.Render("Error encoding JSON: " + err.Error()))
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if len(records) == 0 {
		fmt.Println(warningStyle.Render("No JDK installations found."))
		fmt.Println(infoStyle.Render("Install a JDK or point jenv at one, then run 'jdkpulse list' again."))
		return
	}

	current := ""
	if active, err := store.Active(); err == nil && active != nil {
		current = active.Home
	}

	fmt.Println(titleStyle.Render("Available JDKs:"))
	fmt.Println()

	for _, r := range records {
		marker := "  "
		label := r.Label()
		if r.Home == current {
			marker = "→ "
			label = currentStyle.Render(label)
		}

		// Align label column to width 28 considering visual width
		visW := lipgloss.Width(label)
		pad := 0
		if visW < 28 {
			pad = 28 - visW
		}
		fmt.Printf("%s%s%s %s %s\n", marker, label, strings.Repeat(" ", pad),
			theme.PathStyle.Render(r.Home), theme.Faint.Render("("+r.ID+")"))
	}

	fmt.Println()

	if current == "" {
		fmt.Println(theme.WarningMessage(" No active JDK selected"))
		fmt.Println(theme.Faint.Render("  Run 'jdkpulse use <id>' or 'jdkpulse switch' to pick one"))
	}
}

func handleUse() {
	cfg := loadConfig()
	reg := newRegistry(cfg)
	store := newStore(cfg, reg)

	// Direct mode with an id, version fragment or path argument
	if pflag.NArg() >= 2 {
		arg := pflag.Arg(1)

		// If the argument denotes the current selection, no-op
		if active, err := store.Active(); err == nil && active != nil {
			if records, listErr := reg.List(); listErr == nil && alreadyActive(records, active.Home, arg) {
				fmt.Println(infoStyle.Render(fmt.Sprintf("Already using %s. No changes needed.", active.Label())))
				return
			}
		}

		activate(store, reg, arg)
		return
	}

	// Interactive mode if nothing specified
	records, err := reg.List()
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error finding JDK installations: %v", err)))
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println(warningStyle.Render("No JDK installations found."))
		os.Exit(1)
	}

	selected, err := selectRecord(records, store)
	if err != nil {
		fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
		os.Exit(1)
	}

	if active, err := store.Active(); err == nil && active != nil && active.Home == selected.Home {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Already using %s. No changes needed.", selected.Label())))
		return
	}

	// Confirm switch
	confirmed, err := confirmAction(
		fmt.Sprintf("Switch to %s?", selected.Label()),
		fmt.Sprintf("Path: %s", selected.Home),
	)
	if err != nil || !confirmed {
		fmt.Println(warningStyle.Render("Operation cancelled."))
		return
	}

	activate(store, reg, selected.Home)
}

func handleSwitch() {
	cfg := loadConfig()
	reg := newRegistry(cfg)
	store := newStore(cfg, reg)

	var records []jdk.Record
	var scanErr error
	jdk.WithScanner(func() error {
		records, scanErr = reg.List()
		return nil
	})
	if scanErr != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error finding JDK installations: %v", scanErr)))
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println(warningStyle.Render("No JDK installations found."))
		os.Exit(1)
	}

	selected, err := selectRecord(records, store)
	if err != nil {
		fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
		os.Exit(1)
	}

	activate(store, reg, selected.Home)
}

// alreadyActive reports whether a use argument denotes the active home,
// resolving it with the same rules as activate: path prefix first, then exact
// id, then version fragment.
func alreadyActive(records []jdk.Record, activeHome, arg string) bool {
	if strings.HasPrefix(arg, "/") || strings.HasPrefix(arg, "~/") {
		path := arg
		if rest, ok := strings.CutPrefix(arg, "~/"); ok {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, rest)
			}
		}
		return path == activeHome
	}
	for _, r := range records {
		if r.ID == arg {
			return r.Home == activeHome
		}
	}
	for _, r := range records {
		if strings.Contains(r.VersionFull, arg) {
			return r.Home == activeHome
		}
	}
	return false
}

// activate resolves idOrHome through the store and reports the outcome.
// Anything that is not an id or a path is retried as a version fragment
// against the registry, so 'jdkpulse use 21' works like the id form.
func activate(store *state.Store, reg *jdk.Registry, idOrHome string) {
	home, err := store.SetActive(idOrHome)
	if err != nil && !strings.HasPrefix(idOrHome, "/") && !strings.HasPrefix(idOrHome, "~/") {
		if records, listErr := reg.List(); listErr == nil {
			for _, r := range records {
				if strings.Contains(r.VersionFull, idOrHome) {
					home, err = store.SetActive(r.Home)
					break
				}
			}
		}
	}
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Println(infoStyle.Render("Use 'jdkpulse list' to see available JDKs."))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("✓ Active JDK updated!"))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Home:"), theme.PathStyle.Render(home))
	fmt.Println()
	fmt.Println(theme.Faint.Render("Note: Tools reading the state file pick this up on their next start."))
}

func handleCurrent() {
	cfg := loadConfig()
	reg := newRegistry(cfg)
	store := newStore(cfg, reg)

	active, err := store.Active()
	if err != nil {
		fmt.Println(errorStyle.Render("Error resolving active JDK: " + err.Error()))
		os.Exit(1)
	}

	if *jsonOutput {
		if active == nil {
			fmt.Println("{}")
			return
		}
		out, err := json.MarshalIndent(active, "", "  ")
		if err != nil {
			fmt.Println(errorStyle.Render("Error encoding JSON: " + err.Error()))
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println(titleStyle.Render("Active JDK"))
	fmt.Println()

	if active == nil {
		fmt.Println(warningStyle.Render("No active JDK selected"))
		fmt.Println(theme.Faint.Render("Run 'jdkpulse use <id>' or 'jdkpulse switch' to pick one"))
		return
	}

	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Version:"), currentStyle.Render(active.VersionFull))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Home:"), theme.PathStyle.Render(active.Home))
	if active.Vendor != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("Vendor:"), active.Vendor)
	}

	if active.ID == "unknown" {
		fmt.Println()
		fmt.Println(warningStyle.Render("The selected path no longer matches any discovered JDK"))
		fmt.Println(theme.Faint.Render("Use 'jdkpulse use' to re-select one"))
	} else if !jdk.HasRuntime(active.Home) {
		fmt.Println()
		fmt.Println(warningStyle.Render("The active JDK home lacks bin/java"))
	}
}

func handleDefault() {
	cfg := loadConfig()
	root := cfg.JenvRoot
	if root == "" {
		root = jdk.DefaultJenvRoot()
	}

	if jdk.JenvDefaultExists(root) {
		fmt.Println(theme.SuccessMessage("A global jenv default version is configured"))
		fmt.Println("  " + theme.Faint.Render("See ") + theme.Code.Render(root+"/version"))
	} else {
		fmt.Println(theme.InfoMessage("No global jenv default version is configured"))
		fmt.Println("  " + theme.Faint.Render("Run ") + theme.Code.Render("jenv global <version>") + theme.Faint.Render(" to set one"))
	}
}

func handleDoctor() {
	fmt.Println(titleStyle.Render("JDK-Pulse - System Diagnostics"))
	fmt.Println()

	issues := []string{}
	warnings := []string{}

	cfg := loadConfig()
	reg := newRegistry(cfg)
	store := newStore(cfg, reg)

	// 1. Check the java_home registry tool
	fmt.Println(theme.LabelStyle.Render("Checking java_home tool..."))
	if runtime.GOOS != "darwin" {
		fmt.Println("  " + theme.InfoMessage("Not a macOS host; the java_home registry is skipped"))
	} else if _, err := os.Stat("/usr/libexec/java_home"); err == nil {
		fmt.Println("  " + theme.SuccessMessage("/usr/libexec/java_home is present"))
	} else {
		fmt.Println("  " + theme.ErrorMessage("/usr/libexec/java_home not found"))
		issues = append(issues, "the java_home registry tool is missing")
	}
	fmt.Println()

	// 2. Check the jenv root
	root := cfg.JenvRoot
	if root == "" {
		root = jdk.DefaultJenvRoot()
	}
	fmt.Println(theme.LabelStyle.Render("Checking jenv..."))
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		fmt.Printf("  %s %s\n", theme.SuccessMessage("jenv root found:"), theme.PathStyle.Render(root))
		if jdk.JenvDefaultExists(root) {
			fmt.Println("  " + theme.SuccessMessage("A global jenv default is configured"))
		} else {
			fmt.Println("  " + theme.InfoMessage("No global jenv default configured"))
		}
	} else {
		fmt.Printf("  %s %s\n", theme.InfoMessage("jenv root not found:"), theme.PathStyle.Render(root))
		warnings = append(warnings, "jenv is not installed; only the system registry will be scanned")
	}
	fmt.Println()

	// 3. Check discovered installations
	fmt.Println(theme.LabelStyle.Render("Checking JDK installations..."))
	records, err := reg.List()
	if err != nil {
		fmt.Printf("  %s %v\n", theme.ErrorStyle.Render("✗ Error finding JDK installations:"), err)
		issues = append(issues, fmt.Sprintf("error detecting JDK installations: %v", err))
	} else if len(records) == 0 {
		fmt.Println("  " + theme.WarningMessage("No JDK installations found"))
		warnings = append(warnings, "no JDK installations detected")
	} else {
		fmt.Printf("  %s %d\n", theme.SuccessMessage("Found installations:"), len(records))
		for _, r := range records {
			if !jdk.HasRuntime(r.Home) {
				fmt.Printf("  %s %s\n", theme.WarningMessage("Missing bin/java:"), theme.PathStyle.Render(r.Home))
				warnings = append(warnings, fmt.Sprintf("%s lacks bin/java", r.Home))
			}
		}
	}
	fmt.Println()

	// 4. Check the active selection
	fmt.Println(theme.LabelStyle.Render("Checking active selection..."))
	active, err := store.Active()
	switch {
	case err != nil:
		fmt.Printf("  %s %v\n", theme.ErrorStyle.Render("✗ Error resolving active JDK:"), err)
		issues = append(issues, fmt.Sprintf("error resolving active JDK: %v", err))
	case active == nil:
		fmt.Println("  " + theme.InfoMessage("No active JDK selected"))
	case active.ID == "unknown":
		fmt.Printf("  %s %s\n", theme.WarningMessage("Active path matches no discovered JDK:"), theme.PathStyle.Render(active.Home))
		warnings = append(warnings, "the active selection points outside the discovered registry")
	default:
		fmt.Printf("  %s %s\n", theme.SuccessMessage("Active:"), theme.PathStyle.Render(active.Home))
	}
	fmt.Println()

	// 5. Check the config file
	fmt.Println(theme.LabelStyle.Render("Checking configuration..."))
	if _, err := config.Load(); err != nil {
		fmt.Printf("  %s %v\n", theme.ErrorStyle.Render("✗ Config file unreadable:"), err)
		issues = append(issues, fmt.Sprintf("config file unreadable: %v", err))
	} else {
		fmt.Println("  " + theme.SuccessMessage("Configuration OK"))
	}
	fmt.Println()

	// Summary
	switch {
	case len(issues) > 0:
		fmt.Println(theme.ErrorMessage(fmt.Sprintf("%d issue(s) found", len(issues))))
		for _, issue := range issues {
			fmt.Println("  " + theme.Faint.Render("• "+issue))
		}
	case len(warnings) > 0:
		fmt.Println(theme.WarningMessage(fmt.Sprintf("%d warning(s), no blocking issues", len(warnings))))
		for _, w := range warnings {
			fmt.Println("  " + theme.Faint.Render("• "+w))
		}
	default:
		fmt.Println(theme.SuccessMessage("Everything looks healthy"))
	}
}

func handleUpdate() {
	cfg := loadConfig()

	if !cfg.UpdateConfig.Enabled {
		fmt.Println(warningStyle.Render("Updates are disabled in configuration."))
		fmt.Println(theme.Faint.Render("To enable, edit ~/.config/jdkpulse/config.json and set update_config.enabled to true"))
		return
	}

	upd, err := updater.NewUpdater(cfg, Version)
	if err != nil {
		fmt.Println(errorStyle.Render("Error initializing updater: " + err.Error()))
		os.Exit(1)
	}

	updater.ShowCheckingForUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), updater.UpdateTimeout)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render("Update check failed: " + err.Error()))
		os.Exit(1)
	}

	if release == nil {
		updater.ShowAlreadyUpToDate(Version)
		return
	}

	action, err := upd.PromptForUpdate(release)
	if err != nil {
		fmt.Println(warningStyle.Render("Update cancelled."))
		return
	}

	if action != "update" {
		if action == "skip" {
			fmt.Println(theme.InfoMessage(fmt.Sprintf("Skipped version %s", release.Version())))
		} else {
			fmt.Println(theme.InfoMessage("Update postponed"))
		}
		return
	}

	updater.ShowDownloadingUpdate(release.Version())

	if err := upd.PerformUpdate(ctx, release); err != nil {
		fmt.Println()
		fmt.Println(errorStyle.Render("Update failed: " + err.Error()))
		fmt.Println()
		fmt.Println(theme.Faint.Render("Please try again or download manually from:"))
		fmt.Println(theme.Faint.Render("https://github.com/jdk-pulse/jdkpulse/releases"))
		os.Exit(1)
	}

	updater.ShowUpdateSuccess(release.Version())
}

func checkForUpdateBackground() {
	// Don't break the command over a failed background check
	defer func() {
		if r := recover(); r != nil {
			// Silently ignore panics in background check
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	upd, err := updater.NewUpdater(cfg, Version)
	if err != nil {
		return
	}

	if !upd.ShouldCheckForUpdate() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil || release == nil {
		return
	}

	updater.ShowUpdateNotification(Version, release.Version())
}

func selectRecord(records []jdk.Record, store *state.Store) (*jdk.Record, error) {
	current := ""
	if active, err := store.Active(); err == nil && active != nil {
		current = active.Home
	}

	// Reorder: put the current selection first
	ordered := make([]jdk.Record, 0, len(records))
	for _, r := range records {
		if r.Home == current {
			ordered = append(ordered, r)
		}
	}
	for _, r := range records {
		if r.Home != current {
			ordered = append(ordered, r)
		}
	}

	options := make([]huh.Option[int], len(ordered))
	for i, r := range ordered {
		labelPart := r.Label()
		if current == "" || r.Home == current {
			labelPart = currentStyle.Render(labelPart)
		}

		// Compute padding based on visual width to align columns
		labelWidth := lipgloss.Width(labelPart)
		pad := 0
		if labelWidth < 28 {
			pad = 28 - labelWidth
		}

		label := fmt.Sprintf("%s%s %s", labelPart, strings.Repeat(" ", pad), r.Home)
		if r.Home == current {
			label += " " + theme.Faint.Render("[current]")
		}

		options[i] = huh.NewOption(label, i)
	}

	var selectedIdx int

	err := huh.NewSelect[int]().
		Title(theme.Subtitle.Render("Select JDK")).
		Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
		Options(options...).
		Value(&selectedIdx).
		Run()

	if err != nil {
		return nil, err
	}

	return &ordered[selectedIdx], nil
}

func confirmAction(title, description string) (bool, error) {
	var confirmed bool

	err := huh.NewConfirm().
		Title(theme.Subtitle.Render(title)).
		Description(theme.Faint.Render(description)).
		Affirmative(theme.SuccessStyle.Render("Yes")).
		Negative(theme.ErrorStyle.Render("No")).
		Value(&confirmed).
		Run()

	return confirmed, err
}

func printVersion() {
	linkStyle := lipgloss.NewStyle().
		Foreground(theme.Info).
		Underline(true)

	fmt.Printf("%s %s %s\n",
		theme.Subtitle.Render("JDK-Pulse (jdkpulse)"),
		theme.Faint.Render("version"),
		theme.HighlightText(Version))
	fmt.Println(linkStyle.Render("https://github.com/jdk-pulse/jdkpulse"))
}

func printUsage() {
	banner := `     ██╗██████╗ ██╗  ██╗
     ██║██╔══██╗██║ ██╔╝
     ██║██║  ██║█████╔╝
██   ██║██║  ██║██╔═██╗
╚█████╔╝██████╔╝██║  ██╗
 ╚════╝ ╚═════╝ ╚═╝  ╚═╝  pulse`

	fmt.Println(theme.Banner.Render(banner))
	fmt.Println(theme.Subtitle.Render("JDK discovery and switching"))
	fmt.Println(theme.Faint.Render("One active JDK, shared by your shells, IDEs and launchers"))
	fmt.Println()

	fmt.Println(theme.Title.Render("USAGE"))
	fmt.Println(theme.Faint.Render("  jdkpulse [flags] <command> [arguments]"))
	fmt.Println()

	categoryStyle := theme.Subtitle
	commandStyle := theme.CommandStyle
	descStyle := theme.Faint

	fmt.Println(categoryStyle.Render("DISCOVERY"))
	fmt.Printf("  %s                %s\n",
		commandStyle.Render("list"),
		descStyle.Render("List every discovered JDK installation"))
	fmt.Printf("  %s             %s\n",
		commandStyle.Render("default"),
		descStyle.Render("Report whether a global jenv default is configured"))
	fmt.Printf("  %s              %s\n",
		commandStyle.Render("doctor"),
		descStyle.Render("Run diagnostics on your JDK setup"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("SELECTION"))
	fmt.Printf("  %s [id|path]      %s\n",
		commandStyle.Render("use"),
		descStyle.Render("Set the active JDK (interactive without argument)"))
	fmt.Printf("  %s              %s\n",
		commandStyle.Render("switch"),
		descStyle.Render("Quick interactive JDK switcher"))
	fmt.Printf("  %s             %s\n",
		commandStyle.Render("current"),
		descStyle.Render("Show the active JDK"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("MAINTENANCE"))
	fmt.Printf("  %s              %s\n",
		commandStyle.Render("update"),
		descStyle.Render("Update jdkpulse to the latest release"))
	fmt.Printf("  %s             %s\n",
		commandStyle.Render("version"),
		descStyle.Render("Print version information"))
	fmt.Printf("  %s                %s\n",
		commandStyle.Render("help"),
		descStyle.Render("Show this help message"))
	fmt.Println()

	fmt.Println(categoryStyle.Render("FLAGS"))
	fmt.Printf("  %s          %s\n",
		commandStyle.Render("-j, --json"),
		descStyle.Render("JSON output for 'list' and 'current'"))
	fmt.Printf("  %s       %s\n",
		commandStyle.Render("-V, --version"),
		descStyle.Render("Print version information"))
	fmt.Println()

	fmt.Println(descStyle.Render("Examples:"))
	fmt.Println(descStyle.Render("  jdkpulse list                      # themed listing with the active JDK marked"))
	fmt.Println(descStyle.Render("  jdkpulse list --json               # machine-readable record list"))
	fmt.Println(descStyle.Render("  jdkpulse use jenv-21_0_2           # select by record id"))
	fmt.Println(descStyle.Render("  jdkpulse use ~/jdks/temurin-21     # select by path"))
	fmt.Println(descStyle.Render("  jdkpulse switch                    # interactive picker"))
}
