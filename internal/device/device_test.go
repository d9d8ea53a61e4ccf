package device

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiocel/internal/config"
	"audiocel/internal/system"
	tu "audiocel/internal/testutil"
	"audiocel/internal/tools"
)

type call struct {
	exe  string
	args []string
}

// fakeRunner answers captured runs by executable base name.
type fakeRunner struct {
	results map[string]tools.Result
	errs    map[string]error
	calls   []call
}

func (f *fakeRunner) RunCaptured(_ context.Context, exe string, args ...string) (tools.Result, error) {
	f.calls = append(f.calls, call{exe: exe, args: args})
	name := filepath.Base(exe)
	if err := f.errs[name]; err != nil {
		return tools.Result{ExitCode: -1}, err
	}
	return f.results[name], nil
}

func testConfig() config.Config {
	return config.Config{Version: "v3.3.1", ToolsDir: filepath.Join("x", "tools")}
}

const readyListing = "List of devices attached\nR58M123ABC\tdevice\n\n"

func TestEnsureVisible_ReadyDeviceNoGuidance(t *testing.T) {
	run := &fakeRunner{results: map[string]tools.Result{
		"scrcpy.exe": {Stdout: "scrcpy 3.3.1 <https://github.com/Genymobile/scrcpy>"},
		"adb.exe":    {Stdout: readyListing},
	}}
	var out bytes.Buffer
	cfg := testConfig()

	err := NewChecker(cfg, run, &out, system.Discard()).EnsureVisible(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Verificando dispositivo via ADB...\nList of devices attached\nR58M123ABC\tdevice\n", out.String())
	assert.NotContains(t, out.String(), Guidance[0])

	require.Len(t, run.calls, 2)
	assert.Equal(t, call{exe: cfg.ScrcpyExe(), args: []string{"--version"}}, run.calls[0])
	assert.Equal(t, call{exe: cfg.AdbExe(), args: []string{"devices"}}, run.calls[1])
}

func TestEnsureVisible_NoReadyDevicePrintsGuidance(t *testing.T) {
	for name, listing := range map[string]string{
		"empty":        "List of devices attached\n\n",
		"unauthorized": "List of devices attached\nR58M123ABC\tunauthorized\n",
		"offline":      "List of devices attached\nemulator-5554\toffline\n",
	} {
		t.Run(name, func(t *testing.T) {
			run := &fakeRunner{results: map[string]tools.Result{"adb.exe": {Stdout: listing}}}
			var out bytes.Buffer

			err := NewChecker(testConfig(), run, &out, system.Discard()).EnsureVisible(context.Background())
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.String(), strings.Join(Guidance, "\n")+"\n"))
		})
	}
}

func TestEnsureVisible_BridgeFailure(t *testing.T) {
	run := &fakeRunner{results: map[string]tools.Result{
		"adb.exe": {ExitCode: 1, Stderr: "error: could not install *smartsocket* listener"},
	}}
	var out bytes.Buffer

	err := NewChecker(testConfig(), run, &out, system.Discard()).EnsureVisible(context.Background())
	var be *BridgeError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 1, be.ExitCode)
	assert.Contains(t, be.Error(), "smartsocket")
	assert.NotContains(t, out.String(), Guidance[0])
}

func TestEnsureVisible_SpawnErrorsPropagate(t *testing.T) {
	for _, name := range []string{"scrcpy.exe", "adb.exe"} {
		t.Run(name, func(t *testing.T) {
			spawn := &tools.SpawnError{Exe: name, Err: errors.New("file not found")}
			run := &fakeRunner{errs: map[string]error{name: spawn}}

			err := NewChecker(testConfig(), run, &bytes.Buffer{}, system.Discard()).EnsureVisible(context.Background())
			var se *tools.SpawnError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, name, se.Exe)
		})
	}
}

func TestEnsureVisible_WarmUpExitCodeIgnored(t *testing.T) {
	run := &fakeRunner{results: map[string]tools.Result{
		"scrcpy.exe": {ExitCode: 1, Stderr: "ERROR: something"},
		"adb.exe":    {Stdout: readyListing},
	}}
	err := NewChecker(testConfig(), run, &bytes.Buffer{}, system.Discard()).EnsureVisible(context.Background())
	assert.NoError(t, err)
}

func TestHasReadyDevice(t *testing.T) {
	assert.True(t, HasReadyDevice(readyListing))
	assert.True(t, HasReadyDevice("List of devices attached\r\nABC\tdevice\r\n"))
	assert.False(t, HasReadyDevice("List of devices attached\n"))
	assert.False(t, HasReadyDevice("ABC device\n"))
	assert.False(t, HasReadyDevice("ABC\tunauthorized\n"))
}

func TestEnsureVisible_RealProcesses(t *testing.T) {
	tu.RequireShell(t)
	cfg := config.Config{Version: "v3.3.1", ToolsDir: t.TempDir()}
	tu.WriteScript(t, cfg.InstallDir(), "scrcpy.exe", `echo "scrcpy 3.3.1"`)
	tu.WriteScript(t, cfg.InstallDir(), "adb.exe", `printf 'List of devices attached\nR58M123ABC\tdevice\n\n'`)

	var out bytes.Buffer
	err := NewChecker(cfg, tools.Runner{}, &out, system.Discard()).EnsureVisible(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "R58M123ABC\tdevice")
	assert.NotContains(t, out.String(), Guidance[0])
}
