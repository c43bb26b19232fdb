package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd(args []string) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sitetraffic completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic completion bash > /usr/local/etc/bash_completion.d/sitetraffic\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic completion zsh > \"${fpath[1]}/_sitetraffic\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  sitetraffic completion fish > ~/.config/fish/completions/sitetraffic.fish\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func generateBashCompletion() string {
	return `# bash completion for sitetraffic                        -*- shell-script -*-

_sitetraffic() {
    local cur prev words cword
    _init_completion || return

    local commands="lookup cache mock completion version help"

    # Flags per subcommand
    local tui_flags="--url --clipboard --config --theme --no-persist --version"
    local lookup_flags="--output --color --verbose --rate --config --no-persist"
    local cache_flags="--config"
    local mock_flags="--port --latency --error-rate --cors-origin --months"

    local output_formats="text json"
    local cache_commands="list delete clear"
    local themes="catppuccin-mocha catppuccin-latte nord dracula"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    # Complete flag values
    case "${prev}" in
        --output)
            COMPREPLY=($(compgen -W "${output_formats}" -- "${cur}"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            return
            ;;
        --config)
            _filedir yaml
            return
            ;;
        --url|--rate|--port|--latency|--error-rate|--cors-origin|--months)
            # These take user-provided values, no completion
            return
            ;;
    esac

    case "${command}" in
        lookup)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${lookup_flags}" -- "${cur}"))
            fi
            ;;
        cache)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${cache_flags}" -- "${cur}"))
            elif [[ ${cword} -eq 2 ]]; then
                COMPREPLY=($(compgen -W "${cache_commands}" -- "${cur}"))
            fi
            ;;
        mock)
            COMPREPLY=($(compgen -W "${mock_flags}" -- "${cur}"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        -*)
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _sitetraffic sitetraffic
`
}

func generateZshCompletion() string {
	return `#compdef sitetraffic

# zsh completion for sitetraffic

_sitetraffic() {
    local -a commands
    commands=(
        'lookup:Look up one or more URLs without the TUI'
        'cache:List, delete or clear cached snapshots'
        'mock:Start a local fake of the traffic API'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--url[Active tab URL]:url:' \
        '--clipboard[Read the active tab URL from the clipboard]' \
        '--config[Config file]:config file:_files -g "*.yaml"' \
        '--theme[Color theme]:theme:(catppuccin-mocha catppuccin-latte nord dracula)' \
        '--no-persist[Use an in-memory cache]' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'sitetraffic commands' commands
            ;;
        args)
            case $words[1] in
                lookup)
                    _arguments \
                        '--output[Output format]:format:(text json)' \
                        '--color[Syntax highlight JSON output]' \
                        '--verbose[Show raw visit counts and source URLs]' \
                        '--rate[Max API requests per second]:rate:' \
                        '--config[Config file]:config file:_files -g "*.yaml"' \
                        '--no-persist[Use an in-memory cache]' \
                        '*:url:'
                    ;;
                cache)
                    _arguments \
                        '--config[Config file]:config file:_files -g "*.yaml"' \
                        '1:cache command:(list delete clear)' \
                        '*:domain:'
                    ;;
                mock)
                    _arguments \
                        '--port[Port to listen on]:port:' \
                        '--latency[Artificial response latency]:latency:' \
                        '--error-rate[Random error rate]:rate:' \
                        '--cors-origin[Access-Control-Allow-Origin value]:origin:' \
                        '--months[Months of history per domain]:months:'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_sitetraffic "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for sitetraffic

# Disable file completions by default
complete -c sitetraffic -f

# Subcommands
complete -c sitetraffic -n '__fish_use_subcommand' -a lookup -d 'Look up one or more URLs without the TUI'
complete -c sitetraffic -n '__fish_use_subcommand' -a cache -d 'List, delete or clear cached snapshots'
complete -c sitetraffic -n '__fish_use_subcommand' -a mock -d 'Start a local fake of the traffic API'
complete -c sitetraffic -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c sitetraffic -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c sitetraffic -n '__fish_use_subcommand' -a help -d 'Show help message'

# popup flags
complete -c sitetraffic -n '__fish_use_subcommand' -l url -d 'Active tab URL' -r
complete -c sitetraffic -n '__fish_use_subcommand' -l clipboard -d 'Read the active tab URL from the clipboard'
complete -c sitetraffic -n '__fish_use_subcommand' -l config -d 'Config file' -rF
complete -c sitetraffic -n '__fish_use_subcommand' -l theme -d 'Color theme' -ra 'catppuccin-mocha catppuccin-latte nord dracula'
complete -c sitetraffic -n '__fish_use_subcommand' -l no-persist -d 'Use an in-memory cache'
complete -c sitetraffic -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# lookup flags
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l output -d 'Output format' -ra 'text json'
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l color -d 'Syntax highlight JSON output'
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l verbose -d 'Show raw visit counts and source URLs'
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l rate -d 'Max API requests per second' -r
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l config -d 'Config file' -rF
complete -c sitetraffic -n '__fish_seen_subcommand_from lookup' -l no-persist -d 'Use an in-memory cache'

# cache
complete -c sitetraffic -n '__fish_seen_subcommand_from cache; and not __fish_seen_subcommand_from list delete clear' -a 'list delete clear'
complete -c sitetraffic -n '__fish_seen_subcommand_from cache' -l config -d 'Config file' -rF

# mock flags
complete -c sitetraffic -n '__fish_seen_subcommand_from mock' -l port -d 'Port to listen on' -r
complete -c sitetraffic -n '__fish_seen_subcommand_from mock' -l latency -d 'Artificial response latency' -r
complete -c sitetraffic -n '__fish_seen_subcommand_from mock' -l error-rate -d 'Random error rate' -r
complete -c sitetraffic -n '__fish_seen_subcommand_from mock' -l cors-origin -d 'Access-Control-Allow-Origin value' -r
complete -c sitetraffic -n '__fish_seen_subcommand_from mock' -l months -d 'Months of history per domain' -r

# completion shells
complete -c sitetraffic -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'
`
}
