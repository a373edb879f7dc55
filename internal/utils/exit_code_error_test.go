package utils_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitopolis/internal/utils"
)

func TestExitCodeErrorSurvivesWrapping(testInstance *testing.T) {
	wrappedError := fmt.Errorf("exec: %w", utils.NewExitCodeError(utils.ExitCodeFailure, ""))

	var exitCodeError utils.ExitCodeError
	require.True(testInstance, errors.As(wrappedError, &exitCodeError))
	require.Equal(testInstance, utils.ExitCodeFailure, exitCodeError.Code)
	require.Empty(testInstance, exitCodeError.Error())
}
