// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag is a discovered json struct tag, reported by --schema.
type schemaTag struct {
	Name     string
	Kind     string
	Optional bool
}

// NewTag builds a schemaTag from a raw json tag value and the field type. A
// holder prefix yields dotted names for nested structs.
func NewTag(holder string, tagValue string, typ reflect.Type) schemaTag {
	parts := strings.Split(tagValue, ",")
	if parts[0] == "" || parts[0] == "-" {
		return schemaTag{}
	}

	tag := schemaTag{Name: parts[0], Kind: typ.String()}
	if holder != "" {
		tag.Name = holder + "." + tag.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.Optional = true
		}
	}
	return tag
}

// print renders the tag into its display form.
func (t schemaTag) print() string {
	kind := strings.TrimPrefix(t.Kind, "cat.")
	if t.Optional {
		kind += " (optional)"
	}
	return fmt.Sprintf("%-14s %s", t.Name, kind)
}

// maxSchemaDepth limits the depth of schema walking.
const maxSchemaDepth = 1

// DumpSchema writes a sorted list of the record keys available to --attrs.
// If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Record keys available to the --attrs flag. List elements are selected with
key[n] (key[-1] is the last) and talent levels with talents.<name>.`)
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker("", typ, 0)
	if len(tags) == 0 {
		log.Debugf("no tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, tag.print())
	}
}

// dumpSchemaWalker walks a struct type discovering json tags.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}

		tag := NewTag(holder, tagValue, field.Type)
		if tag.Name == "" {
			continue
		}
		tags = append(tags, tag)

		if depth < maxSchemaDepth && field.Type.Kind() == reflect.Struct {
			tags = append(tags, dumpSchemaWalker(tag.Name, field.Type, depth+1)...)
		}
	}

	return tags
}
