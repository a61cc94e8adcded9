//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

func Build() error {
	mg.Deps(BuildCalculator)
	fmt.Println("Compilation finished")
	return nil
}

// The HDF5 store links against libhdf5, so cgo flags are forwarded.
func BuildCalculator() error {
	fmt.Println("Building calculator executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/calculator", "./calculator")
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Test runs the library tests. Packages linking libhdf5 are left out
// unless MG_TEST_HDF5 is set.
func Test() error {
	packages := []string{"./pkg"}
	if os.Getenv("MG_TEST_HDF5") != "" {
		packages = append(packages, "./pkg/h5store", "./calculator")
	}
	cmd := exec.Command("go", append([]string{"test", "-race"}, packages...)...)
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func cgoEnv() []string {
	return append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", os.Getenv("CGO_LDFLAGS")),
		fmt.Sprintf("CGO_CFLAGS=%s", os.Getenv("CGO_CFLAGS")))
}
