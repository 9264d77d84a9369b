// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the blueprint
// server. Each command calls one blueprint route through
// [adapter.BlueprintClient] and renders the response with package tui.
//
// Commands:
//
//	version
//	count <model> [where]
//	associations <model>
//	schema <model>
//	filters <model>
//	titles <model>
//	association-count <model> <id> <collection> [where]
//	inspect <model> [model...]
//
// where is a JSON object such as '{"age":{">=":18}}'.
package client
