// Package config holds the injectable dependencies of the program.
package config

import "fmt"

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Println PrintlnFunc
}

// PrintlnFunc is a function that writes its operands to standard output
// followed by a newline. It matches the signature of fmt.Println to
// allow for mock implementations.
type PrintlnFunc func(a ...interface{}) (n int, err error)

// GetPrintlnFunc returns the println function from dependencies, or a default implementation.
// If deps is nil or deps.Println is nil, returns fmt.Println.
func GetPrintlnFunc(deps *Dependencies) PrintlnFunc {
	if deps != nil && deps.Println != nil {
		return deps.Println
	}
	return fmt.Println
}
