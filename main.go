package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/gitopolis/cmd/cli"
	"github.com/temirov/gitopolis/internal/utils"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the gitopolis command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var exitCodeError utils.ExitCodeError
	if errors.As(executionError, &exitCodeError) {
		if len(exitCodeError.Message) > 0 {
			fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, exitCodeError.Message)
		}
		os.Exit(exitCodeError.Code)
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(utils.ExitCodeFailure)
}
