package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/staranto/postinstall/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for postinstall
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_postinstall()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--prefix -p --dry-run -n --skip-destdir --color -c --no-color --schema-compiler --icon-cache-updater --desktop-database-updater"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "plan status completion $global --help --version" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--prefix" || "$prev" == "-p" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
        plan|status)
            local opts="$global --filter -f --output -o --sort -s --titles -t --no-titles"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$global"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _postinstall postinstall
`

const zshCompletionScript = `#compdef postinstall

_postinstall() {
  local -a cmds
  cmds=(
    'plan:show which maintenance commands would run'
    'status:show the cache files maintained under the prefix'
    'completion:generate shell completion script'
  )

  local -a global
  global=(
  '(-p --prefix)'{-p,--prefix}'[install prefix]:prefix:_directories'
  '(-n --dry-run)'{-n,--dry-run}'[print commands instead of running them]'
  '--skip-destdir[skip when DESTDIR is set]'
  '(-c --color --no-color)'{-c,--color}'[enable colored text]'
  '--no-color[disable colored text]'
  '--schema-compiler[schema compiler command]:command:_command_names'
  '--icon-cache-updater[icon cache command]:command:_command_names'
  '--desktop-database-updater[desktop database command]:command:_command_names'
  )

  local -a listing
  listing=(
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles --no-titles)'{-t,--titles}'[show titles]'
  '--no-titles[hide titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'postinstall commands' cmds
    _arguments $global
    return
  fi

  case $words[2] in
    plan|status)
      _arguments -C $global $listing
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $global
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _postinstall postinstall
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL
		sh := m.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}
	switch shell {
	case "bash":
		fmt.Fprint(m.Out(), bashCompletionScript)
	case "zsh":
		fmt.Fprint(m.Out(), zshCompletionScript)
	default:
		fmt.Fprintln(m.Err(), "usage: postinstall completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "postinstall completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
