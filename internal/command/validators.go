// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/filters"
	"github.com/catfood/bcq/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator rejects a malformed --filter or --attrs before any
// dataset is read.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if spec := c.String("filter"); spec != "" {
		if _, err := filters.BuildFilters(spec); err != nil {
			return err
		}
	}

	if spec := c.String("attrs"); spec != "" {
		var al attrs.AttrList
		if err := al.Set(spec); err != nil {
			return fmt.Errorf("invalid --attrs: %w", err)
		}
	}

	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(outputFormats(), fmt.Sprint(value)) {
		return fmt.Errorf("must be one of %v", outputFormats())
	}
	return nil
}

// CategoryValidator accepts the stats categories.
func CategoryValidator(value any) error {
	if !slices.Contains(catalog.Categories, fmt.Sprint(value)) {
		return fmt.Errorf("must be one of %v", catalog.Categories)
	}
	return nil
}

func outputFormats() []string {
	return output.Formats
}
