//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the classboard binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/classboard", "./cmd/classboard")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet and gofmt checks
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
