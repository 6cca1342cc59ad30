// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for bcq's user
// configuration. The configuration is a YAML document, resolved as:
//   - $BCQ_CFG_FILE when set
//   - otherwise bcq.yaml in os.UserConfigDir (e.g. $XDG_CONFIG_HOME/bcq.yaml)
//
// Keys are addressed with dotted paths. A command may set Config.Namespace
// so that "find.data" is preferred over "data" when looking up "data".
package config
