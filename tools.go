//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose (migrations) is tracked via the go.mod tool directive.
// moq (interface mocks) is invoked via go:generate and installed separately.
