// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/catfood/bcq/internal/log"
)

// lengthRegex finds the truncation spec inside a transform spec.
var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one output column: a record path to extract, its output name and
// how to transform the value.
type Attr struct {
	// The record path to extract, in driller syntax.
	Key string `yaml:"key" json:"Key"`
	// Should this Attr be included in output or is it only a default that was
	// switched off?
	Include bool `yaml:"include" json:"Include"`
	// The key to use in the output. This is also the column title when
	// output=text.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec to apply to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Lists are transformed element by element.
func (a *Attr) Transform(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return a.transformString(v)
	case float64:
		return a.transformNumber(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = a.Transform(v[i])
		}
		return out
	default:
		log.Tracef("untransformed value: value=%v", value)
		return value
	}
}

// transformNumber renders a number as a percentage (p), with thousands
// separators (c) or as an ordinal (o). Without one of those it is returned
// unchanged.
func (a *Attr) transformNumber(v float64) interface{} {
	spec := a.TransformSpec
	switch {
	case strings.ContainsAny(spec, "pP"):
		result := humanize.FtoaWithDigits(v*100, 1) + "%"
		log.Tracef("number percent: result=%s", result)
		return result
	case strings.ContainsAny(spec, "cC"):
		var result string
		if v == math.Trunc(v) {
			result = humanize.Comma(int64(v))
		} else {
			result = humanize.Commaf(v)
		}
		log.Tracef("number comma: result=%s", result)
		return result
	case strings.ContainsAny(spec, "oO"):
		result := humanize.Ordinal(int(v))
		log.Tracef("number ordinal: result=%s", result)
		return result
	}
	return v
}

func (a *Attr) transformString(result string) string {
	// We need to know which case transformation appears last. This covers the
	// case where there has been a global case transformation prepended to the
	// attrs transformation and allows the attr's to carry more weight.
	// IOW... --attrs '*::U,name::l' will be lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
		log.Tracef("case lower: result=%s", result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
		log.Tracef("case upper: result=%s", result)
	}

	if a.TransformSpec == "" {
		return result
	}

	// Same logic as above re: case. A more specific length transformation
	// overrides a global one.
	match := lengthRegex.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	runes := []rune(result)
	if len(runes) <= abs {
		return result
	}

	if l < 0 {
		lr := abs/2 - 1
		if lr < 1 {
			lr = 1
		}
		result = string(runes[:lr]) + ".." + string(runes[len(runes)-lr:])
		log.Tracef("length middle: result=%s", result)
	} else {
		result = string(runes[:l])
		log.Tracef("length trunc: result=%s", result)
	}
	return result
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Default is the column set used when --attrs adds nothing of its own.
func Default() AttrList {
	return AttrList{
		{Key: "name", OutputKey: "name", Include: true},
		{Key: "rarity", OutputKey: "rarity", Include: true},
		{Key: "form", OutputKey: "form", Include: true},
		{Key: "cost", OutputKey: "cost", Include: true},
		{Key: "ability", OutputKey: "ability", Include: true},
		{Key: "effect", OutputKey: "effect", Include: true},
		{Key: "target", OutputKey: "target", Include: true},
	}
}

// Set parses each spec from --attrs and adds it to the AttrList.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

	// There are three : delimited fields in each spec. The first is the record
	// path to extract. The second is the key to use in the output. The third is
	// the transformation spec to apply to the output value. The latter two are
	// optional. The output key defaults to the last section of the path.
	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {
		attr := Attr{
			Include: true,
		}

		fields := strings.Split(spec, ":")
		if len(fields) > 3 {
			return fmt.Errorf("invalid attr spec %q: too many fields", spec)
		}

		// The first field is the path to extract. If it begins with a !, it is
		// excluded from the output. A leading . is accepted for the root.
		attr.Key = strings.TrimPrefix(strings.TrimSpace(fields[jsonIdx]), ".")
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = strings.TrimPrefix(attr.Key[1:], ".")
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}

		if attr.Key == "*" {
			attr.Include = false
		}
		log.Tracef("key parsed: key=%s, include=%v", attr.Key, attr.Include)

		if len(fields) == 1 || strings.TrimSpace(fields[outputIdx]) == "" {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}
		log.Tracef("output set: outputKey=%s", attr.OutputKey)

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("transform set: spec=%s", attr.TransformSpec)

		// If the attr already exists in the list (because it is a default or
		// the user double-entered it), update the existing Attr in place.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		*a = append(*a, attr)
		log.Tracef("attr appended: len=%d", len(*a))
	}

	return nil
}

// SetGlobalTransformSpec prepends the "*" attr's transform spec to every
// attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	// If there is more than one global spec, take the first.
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}
	log.Debugf("global spec: spec=%s", spec)

	if spec == "" {
		return nil
	}

	for i := range *a {
		if (*a)[i].Key == "*" {
			continue
		}
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}

	return nil
}

// Included returns the attrs that produce output columns, in order.
func (a AttrList) Included() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String returns the list in --attrs syntax.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		key := attr.Key
		if !attr.Include && key != "*" {
			key = "!" + key
		}
		result = append(result, fmt.Sprintf("%s:%s:%s", key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
