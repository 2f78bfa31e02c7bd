// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package invoke runs external maintenance commands on a best-effort basis.
// An Invoker never reports failure to its caller; tests substitute a Recorder
// for the real Exec invoker.
package invoke
