// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders status lines and result sets. Result sets can be
// emitted as a text table, JSON or YAML.
package output
