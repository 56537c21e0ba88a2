// +build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Format code
func Fmt() error {
	return sh.RunV("goimports", "-w", ".")
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run test
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build binary
func Build() error {
	return sh.RunV("go", "build", ".")
}
