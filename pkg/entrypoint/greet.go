// Package entrypoint provides the entry function of the program,
// separating it from CLI argument parsing.
package entrypoint

import "dominicbreuker/helloworld/pkg/config"

// Greeting is the exact line the program emits on standard output.
const Greeting = "Hello world!"

// Greet emits the greeting. It takes no arguments and has exactly one
// side effect: a single println call with the fixed greeting text.
func Greet() {
	greet(nil)
}

// greet is the internal implementation that accepts injected dependencies for testing.
func greet(deps *config.Dependencies) {
	printLine := config.GetPrintlnFunc(deps)
	printLine(Greeting)
}
