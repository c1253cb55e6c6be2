// Tonal - deterministic OKLCH design-token tooling
//
// Tonal generates accessible seven-role colour palettes and validates
// design-token documents against an opinionated rule set.
//
// Copyright (c) 2025 Tonal Authors
// Licensed under the MIT License
package main

import (
	"github.com/tonal-sh/tonal/internal/cli"
)

func main() {
	cli.Execute()
}
