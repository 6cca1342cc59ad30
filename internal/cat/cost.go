// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cost is either a single deploy cost or one cost per collapsed form. The two
// shapes are kept apart so a record round-trips to the JSON it came from.
type Cost struct {
	values []int
	multi  bool
}

// SingleCost builds the scalar shape.
func SingleCost(v int) Cost {
	return Cost{values: []int{v}}
}

// MultiCost builds the sequence shape; costs align positionally with forms.
func MultiCost(vs ...int) Cost {
	values := make([]int, len(vs))
	copy(values, vs)
	return Cost{values: values, multi: true}
}

// Values returns every cost. A scalar cost yields a one element slice.
func (c Cost) Values() []int {
	values := make([]int, len(c.values))
	copy(values, c.values)
	return values
}

// IsMulti reports whether the cost was given as a sequence.
func (c Cost) IsMulti() bool {
	return c.multi
}

// Single returns the scalar cost. ok is false for the sequence shape.
func (c Cost) Single() (v int, ok bool) {
	if c.multi || len(c.values) != 1 {
		return 0, false
	}
	return c.values[0], true
}

// Any reports whether at least one cost satisfies pred.
func (c Cost) Any(pred func(int) bool) bool {
	for _, v := range c.values {
		if pred(v) {
			return true
		}
	}
	return false
}

// String renders a scalar as "150" and a sequence as "1050/1020".
func (c Cost) String() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

// MarshalJSON emits the shape the cost was decoded from.
func (c Cost) MarshalJSON() ([]byte, error) {
	if c.multi {
		if c.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.values)
	}
	if len(c.values) != 1 {
		return nil, fmt.Errorf("scalar cost holds %d values", len(c.values))
	}
	return json.Marshal(c.values[0])
}

// UnmarshalJSON accepts a JSON integer or an array of JSON integers.
func (c *Cost) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("cost is null")
	}
	if len(data) > 0 && data[0] == '[' {
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("cost sequence: %w", err)
		}
		*c = MultiCost(values...)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cost: %w", err)
	}
	*c = SingleCost(v)
	return nil
}
