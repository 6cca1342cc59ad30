// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/meta"
)

const bashCompletionScript = `# bash completion for bcq
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bcq()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "find ls stats show diff completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attrs -a --color -c --data -d --filter -f --key -k --output -o --padding --schema --titles -t"

    case "$cmd" in
        find)
            local opts="$common --name --alias --cost --rarity --form --ability --effect --ability-effect --target --description"
            ;;
        stats)
            local opts="$common --category"
            ;;
        diff)
            local opts="--color -c --diff_filter --key -k"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml raw" -- "$cur") )
            return 0
            ;;
        --category)
            COMPREPLY=( $(compgen -W "ability effect rarity target" -- "$cur") )
            return 0
            ;;
        --data|-d)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # diff takes two dataset files
    if [[ "$cmd" == "diff" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
    return 0
}

complete -F _bcq bcq
`

const zshCompletionScript = `#compdef bcq

_bcq() {
  local -a cmds
  cmds=(
    'find:find units by field'
    'ls:list units with rarity and position'
    'stats:count distinct ability, effect, rarity and target values'
    'show:show every detail of matching units'
    'diff:compare two datasets unit by unit'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-d --data)'{-d,--data}'[dataset file]:file:_files'
  '(-f --filter)'{-f,--filter}'[filters]:filter'
  '(-k --key)'{-k,--key}'[top-level key]:key'
  '(-o --output)'{-o,--output}'[output format]:(text json yaml raw)'
  '--padding[spaces between columns]:padding'
  '--schema[dump record keys]'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'bcq commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    find)
      _arguments -C \
        $common \
        '*--name[name regex]:regex' \
        '*--alias[alias regex]:regex' \
        '*--cost[cost expression]:expr' \
        '*--rarity[rarity regex]:regex' \
        '*--form[form regex]:regex' \
        '*--ability[ability regex]:regex' \
        '*--effect[effect regex]:regex' \
        '*--ability-effect[ability or effect regex]:regex' \
        '*--target[target regex]:regex' \
        '*--description[description regex]:regex'
      ;;
    ls|show)
      _arguments -C $common '1::name regex'
      ;;
    stats)
      _arguments -C $common '--category[category]:(ability effect rarity target)'
      ;;
    diff)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '--diff_filter[record keys to ignore]:keys' \
        '(-k --key)'{-k,--key}'[top-level key]:key' \
        '1:old dataset:_files' \
        '2:new dataset:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bcq bcq
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: bcq completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bcq completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
