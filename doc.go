// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// postinstall is the Meson post-install hook. It wires the CLI, delegates to
// internal packages, and serves as the entry point.
package main
