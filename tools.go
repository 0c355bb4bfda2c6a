//go:build tools

// Package tools records build-time-only tool dependencies so `go mod
// tidy` does not prune them: nothing below is imported by any runtime
// package, only by `go generate` steps in field/ and
// internal/codegen/.
package tools

import (
	_ "github.com/consensys/bavard"
	_ "github.com/mmcloughlin/addchain"
)
