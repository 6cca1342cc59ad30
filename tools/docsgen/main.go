// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the bcq markdown and man pages. Flags come from the
// live command tree; descriptions, examples and notes come from
// <docs>/templates/bcq.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/catfood/bcq/internal/command"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Flags       []Flag    `yaml:"-"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
	EnvVars     []string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	data, err := os.ReadFile(filepath.Join(docs, "templates", "bcq.yaml"))
	if err != nil {
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		panic(err)
	}

	app, err := command.InitApp(context.Background(), []string{"bcq"})
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: filepath.Join(docs, "templates", "bcq.md.tmpl"), Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: filepath.Join(docs, "templates", "bcq.man.tmpl"), Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "bcq-", Suffix: ".1"},
	}

	for _, sub := range config.Subcommands {
		cmd := app.Command(sub.ID)
		if cmd == nil {
			panic(fmt.Sprintf("unknown subcommand %q in bcq.yaml", sub.ID))
		}
		sub.Flags = commandFlags(cmd)
		if sub.Short == "" {
			sub.Short = cmd.Usage
		}
		if sub.Usage == "" {
			sub.Usage = cmd.UsageText
		}

		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
		}

		for _, t := range types {
			if err := render(t, sub.ID, metadata); err != nil {
				panic(err)
			}
		}
	}
}

// render executes one template for one subcommand.
func render(t Outputs, id string, metadata TemplateData) error {
	if err := os.MkdirAll(t.Folder, 0o755); err != nil {
		return err
	}

	path := filepath.Join(t.Folder, t.Prefix+id+t.Suffix)
	fmt.Println("Generating", path)

	tmpl, err := template.ParseFiles(t.Template)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, metadata)
}

// commandFlags describes the visible flags of cmd, sorted by name.
func commandFlags(cmd *cli.Command) []Flag {
	var flags []Flag
	for _, f := range cmd.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}

		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			flag.EnvVars = df.GetEnvVars()
			if df.TakesValue() {
				flag.Syntax += " <" + strings.ToLower(df.TypeName()) + ">"
				flag.Default = df.GetValue()
			}
		}
		flags = append(flags, flag)
	}

	sort.Slice(flags, func(i, j int) bool {
		return flags[i].ID < flags[j].ID
	})
	return flags
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
