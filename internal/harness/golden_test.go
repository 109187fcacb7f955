package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden reports live in testdata/golden. Regenerate with:
//
//	go test ./internal/harness -run Golden -update
func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{
		"classic_market",
		"nothing_frequent",
		"confidence_boundary",
		"three_levels",
		"normalization",
	} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(scenarioPath(name))
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestAssertGolden_RejectedScenario(t *testing.T) {
	scenario, err := LoadScenario(scenarioPath("invalid_threshold"))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	err = AssertGolden(t, scenario.Name, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_THRESHOLD")
}
