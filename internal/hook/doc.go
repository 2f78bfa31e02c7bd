// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package hook implements the post-install runner. It derives the schema,
// icon theme and desktop entry directories from an install prefix and, for
// each one that exists, hands it to the matching cache tool.
package hook
