package magetasks

import (
	"errors"
	"fmt"
)

// golangciDisabled lists linters that fight the table-driven test style.
const golangciDisabled = "exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs gofmt and vet, then staticcheck and golangci-lint when they
// are installed. Failures are collected so one run reports all of them.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet} {
		if err := lint(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, lint := range []func() error{LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		PrintError("Lint failed")
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return Run("Go Format", "go", "fmt", "./...")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional("Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest", "staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional("Golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run", "--disable="+golangciDisabled, "--timeout=5m", "./...")
}

// optional runs a linter that may not be installed, printing how to get it
// when it is missing.
func optional(label, install, cmd string, args ...string) error {
	err := Run(label, cmd, args...)
	switch {
	case err == nil:
		return nil
	case IsCommandNotFound(err):
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", label, install))
		return err
	default:
		return fmt.Errorf("%s failed: %w", label, err)
	}
}
