// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex splits one path segment into a key and an optional index.
// Keys may contain spaces and quotes since talent names do ("Resist Wave").
var segmentRegex = regexp.MustCompile(`^([^\[\]]+?)(\[(-?\d+|\*)?\])?$`)

// Driller navigates record JSON using a dot path. A segment may carry an
// index: "cost[0]" picks the first stage, "cost[-1]" the last and "ability[*]"
// or "ability[]" the whole list. A one-element list without an index
// collapses to its element. The segment "#" counts a list, as in
// "target.#".
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		if p == "#" {
			if !current.IsArray() {
				return gjson.Result{}
			}
			current = gjson.Parse(strconv.Itoa(len(current.Array())))
			continue
		}

		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [] with its contents, matches[3] the contents alone.
		all := matches[2] != "" && (matches[3] == "" || matches[3] == "*")
		indexed := matches[2] != "" && !all

		index := 0
		if indexed {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(EscapeKey(key))
		if val.IsArray() {
			arr := val.Array()
			if index < 0 {
				index += len(arr)
			}
			switch {
			case all:
				// Keep the whole list.
			case !indexed:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise do nothing. We'll dump the whole list.
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if indexed && val.Exists() {
			// A scalar is its own only element.
			if index != 0 && index != -1 {
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// EscapeKey quotes gjson path metacharacters so key is matched literally.
func EscapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
