//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs the tests.
var Default = Test

// Build compiles the kidcards binary.
func Build() error {
	fmt.Println("Building kidcards...")
	return sh.RunV("go", "build", "-o", "kidcards", "./cmd/kidcards")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestProperty runs the property-based tests as well.
func TestProperty() error {
	return sh.RunV("go", "test", "-tags", "property", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin.
func Install() error {
	mg.Deps(Vet)
	return sh.RunV("go", "install", "./cmd/kidcards")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("kidcards")
}
