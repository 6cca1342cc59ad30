// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/catfood/bcq/internal/command"
	"github.com/catfood/bcq/internal/config"
	"github.com/catfood/bcq/internal/log"
	"github.com/catfood/bcq/internal/version"
)

var ctx = context.Background()

// boolFlags never take a value, so the token after one is left alone.
var boolFlags = []string{"c", "color", "h", "help", "schema", "t", "titles", "v", "version"}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args, command.RepeatableFlags()...)
	log.Debugf("args after dedupe: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands a named argument set from the config file. An
// explicit @set argument is replaced by the <command>.<set> entries. Without
// one, <command>.defaults is placed straight after the command so flags typed
// on the command line come later and win.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			args = append(args[:idx:idx], args[idx+1:]...)
			break
		}
	}

	entries, _ := config.GetStringSlice(args[1] + "." + set)
	return injectConfigSet(args, entries, idx)
}

// injectConfigSet splits each entry on whitespace and inserts the fields into
// args at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops all but the last occurrence of each flag so a value
// from a config set can be overridden on the command line. A flag takes the
// following token as its value unless it is boolean, uses = syntax, or the
// next token is itself a flag. Flags in repeatable are kept every time.
func deduplicateFlags(args []string, repeatable ...string) []string {
	if len(args) <= 2 {
		return args
	}

	type occurrence struct {
		name   string
		tokens []string
	}

	var items []occurrence
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			items = append(items, occurrence{tokens: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			items = append(items, occurrence{name: name[:eq], tokens: []string{a}})
			continue
		}

		tokens := []string{a}
		if !slices.Contains(boolFlags, name) && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, args[i+1])
			i++
		}
		items = append(items, occurrence{name: name, tokens: tokens})
	}

	last := map[string]int{}
	for i, item := range items {
		if item.name != "" {
			last[item.name] = i
		}
	}

	out := append([]string(nil), args[:2]...)
	for i, item := range items {
		if item.name != "" && last[item.name] != i && !slices.Contains(repeatable, item.name) {
			continue
		}
		out = append(out, item.tokens...)
	}
	return out
}
