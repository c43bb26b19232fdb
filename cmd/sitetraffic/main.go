package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sitetraffic/internal/app"
	"github.com/sadopc/sitetraffic/internal/core/tab"
	"github.com/sadopc/sitetraffic/internal/popup"
	"github.com/sadopc/sitetraffic/internal/ui/theme"
	"github.com/sadopc/sitetraffic/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "lookup":
			lookupCmd(os.Args[2:])
			return
		case "cache":
			cacheCmd(os.Args[2:])
			return
		case "mock":
			mockCmd(os.Args[2:])
			return
		case "completion":
			completionCmd(os.Args[2:])
			return
		case "version":
			fmt.Println(version.String())
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `sitetraffic - monthly traffic estimates for the site you are looking at

Usage:
  sitetraffic [flags] [URL]            Open the traffic popup
  sitetraffic <command> [args] [flags] Run a subcommand

Commands:
  lookup      Look up one or more URLs without the TUI
  cache       List, delete or clear cached snapshots
  mock        Start a local fake of the traffic API
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

Popup Flags:
  --url <url>        Active tab URL (default: clipboard, or stdin when piped)
  --clipboard        Read the active tab URL from the clipboard
  --config <path>    Config file (default ~/.config/sitetraffic/config.yaml)
  --theme <name>     Color theme (overrides config)
  --no-persist       Use an in-memory cache for this run
  --version          Print version and exit

Run 'sitetraffic <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	urlFlag := flag.String("url", "", "Active tab URL")
	clipboardFlag := flag.Bool("clipboard", false, "Read the active tab URL from the clipboard")
	configFlag := flag.String("config", "", "Path to config file")
	themeFlag := flag.String("theme", "", "Color theme")
	noPersistFlag := flag.Bool("no-persist", false, "Use an in-memory cache")
	flag.Usage = printHelp
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	var (
		provider tab.Provider
		opts     = []tea.ProgramOption{tea.WithAltScreen()}
	)
	switch {
	case *urlFlag != "":
		provider = tab.Static(*urlFlag)
	case flag.NArg() > 0:
		provider = tab.Static(flag.Arg(0))
	case *clipboardFlag || !stdinPiped():
		provider = tab.NewClipboard()
	default:
		provider = tab.NewReader(os.Stdin)
		// keys come from the terminal when the URL is piped in
		opts = append(opts, tea.WithInputTTY())
	}

	cfg := loadConfig(*configFlag, *noPersistFlag)
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	st, err := newStack(cfg)
	if err != nil {
		fatalf(1, "%v", err)
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	session := popup.NewSession(provider, st.gateway, st.client)
	model := app.New(ctx, session, theme.Resolve(cfg.Theme))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		st.Close()
		os.Exit(1)
	}
}

func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}
