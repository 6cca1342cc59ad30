// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/config"
)

// defaultDataFile is the dataset used when neither --data, BCQ_DATA nor the
// config file name one.
const defaultDataFile = "bc.json"

func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the record keys available to --attrs",
		HideDefault: true,
	}
}

// NewGlobalFlags returns the flags shared by the query commands. params[0] is
// the command name used to namespace config file lookups.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	var ns string
	if len(params) > 0 {
		ns = params[0]
	}

	padding, _ := config.GetInt("padding", 2)

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		NewDataFlag(ns, config.Path()),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		NewKeyFlag(ns, config.Path()),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (" + strings.Join(outputFormats(), "|") + ")",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "spaces between text columns",
			Value: padding,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewDataFlag constructs the --data flag. The value may carry a "::key"
// suffix overriding --key. When a config file is given, <ns>.data and then
// data are consulted after BCQ_DATA.
func NewDataFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "dataset file, optionally suffixed with ::key",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BCQ_DATA"),
		),
		Value: defaultDataFile,
	}

	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewKeyFlag constructs the --key flag naming the top-level key that holds
// the records.
func NewKeyFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "top-level key holding the records",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BCQ_KEY"),
		),
		Value: catalog.DefaultKey,
	}

	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
