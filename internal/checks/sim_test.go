// internal/checks/sim_test.go
package checks

import (
	"context"
	"fmt"
	"testing"

	"flowcheck/internal/flow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simResult = "temp 25.0 freq 1.21e6\ntemp 85.0 freq 1.84e6\n"

// simTree builds a passing temp-sense simulation layout with n completed runs.
func simTree(t *testing.T, n int) string {
	t.Helper()
	root := t.TempDir()
	write(t, root, "work/sim_result.txt", simResult)
	write(t, root, "fixtures/temp_sim_expected.txt", simResult)
	write(t, root, "work/sim_state.json",
		fmt.Sprintf(`{"failed_sims":0,"completed_sims":%d}`, n))
	for i := 1; i <= n; i++ {
		write(t, root, fmt.Sprintf("simulations/run/run_0/parameters_%d.txt", i), "w=1")
		write(t, root, fmt.Sprintf("simulations/run/run_0/sim_%d.log", i), "ok")
		write(t, root, fmt.Sprintf("simulations/run/run_0/sim_%d.sp", i), "* netlist")
	}
	return root
}

func TestSimulationCleanRun(t *testing.T) {
	ck := testChecker(t, simTree(t, 2), "")
	res, err := ck.Simulation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CheckSim, res.Check)
	assert.Contains(t, res.Detail, "2 runs")
}

func TestSimulationMissingOneFileFails(t *testing.T) {
	root := simTree(t, 2)
	require.NoError(t, removeFile(root, "simulations/run/run_0/sim_2.log"))
	ck := testChecker(t, root, "")

	_, err := ck.Simulation(context.Background())
	var verr *flow.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "sim_2.log")
	assert.Contains(t, verr.Msg, "run 2")
}

func TestSimulationFailedSimsFail(t *testing.T) {
	root := simTree(t, 2)
	write(t, root, "work/sim_state.json", `{"failed_sims":1,"completed_sims":2}`)
	ck := testChecker(t, root, "")

	_, err := ck.Simulation(context.Background())
	var verr *flow.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "1 of 3 simulations failed")
}

func TestSimulationResultMismatchFails(t *testing.T) {
	root := simTree(t, 1)
	write(t, root, "work/sim_result.txt", "temp 25.0 freq 9.99e9\n")
	ck := testChecker(t, root, "")

	_, err := ck.Simulation(context.Background())
	var verr *flow.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Diff)
}

func TestSimulationVersionMismatchSkipsComparison(t *testing.T) {
	root := simTree(t, 1)
	write(t, root, "work/sim_result.txt", "temp 25.0 freq 9.99e9\n")
	ck := testChecker(t, root, "")
	ck.Probe = func(context.Context) (string, error) { return "ngspice-36", nil }

	_, err := ck.Simulation(context.Background())
	require.NoError(t, err, "result drift under an unpinned simulator only warns")
}

func TestSimulationProbeErrorSkipsComparison(t *testing.T) {
	root := simTree(t, 1)
	write(t, root, "work/sim_result.txt", "different\n")
	ck := testChecker(t, root, "")
	ck.Probe = func(context.Context) (string, error) { return "", fmt.Errorf("not installed") }

	_, err := ck.Simulation(context.Background())
	require.NoError(t, err)
}

func TestSimulationNoRunDir(t *testing.T) {
	root := simTree(t, 1)
	require.NoError(t, removeAll(root, "simulations/run/run_0"))
	ck := testChecker(t, root, "")

	_, err := ck.Simulation(context.Background())
	var lerr *flow.LookupError
	require.ErrorAs(t, err, &lerr)
}

func TestSimulationAmbiguousRunDirs(t *testing.T) {
	root := simTree(t, 1)
	write(t, root, "simulations/run/run_1/parameters_1.txt", "w=1")
	ck := testChecker(t, root, "")

	_, err := ck.Simulation(context.Background())
	var cerr *flow.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "run_0")
	assert.Contains(t, cerr.Error(), "run_1")
}

func TestSimulationZeroCompleted(t *testing.T) {
	root := simTree(t, 0)
	write(t, root, "simulations/run/run_0/.keep", "")
	ck := testChecker(t, root, "")

	res, err := ck.Simulation(context.Background())
	require.NoError(t, err)
	assert.Contains(t, res.Detail, "0 runs")
}
