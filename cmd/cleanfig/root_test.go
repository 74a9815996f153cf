package cleanfig

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/cleanfig/pkg/errors"
	"github.com/arthur-debert/cleanfig/pkg/status"
	"github.com/arthur-debert/cleanfig/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CLEANFIG_LOG_FILE", "false")

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_SuccessIsSilent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	src := env.AddFile("starship.toml", "")
	env.AddDir("nvim")

	stdout, stderr, err := execute(t)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	testutil.AssertSymlinkTo(t, env.Path(".config/starship.toml"), src)
}

func TestRootCmd_FailureIsOneLine(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddFile("unknown.cfg", "")

	_, _, err := execute(t)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "invalid config path `unknown.cfg`")
	assert.NotContains(t, err.Error(), "\n")
}

func TestRootCmd_MissingRoot(t *testing.T) {
	testutil.NewBareEnvironment(t)

	_, _, err := execute(t)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingRoot))
}

func TestRootCmd_MissingHome(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("HOME", "")

	_, _, err := execute(t)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvVar))
}

func TestRootCmd_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddFile("topgrade.toml", "")
	env.AddFile("README.md", "")

	stdout, _, err := execute(t, "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, stdout, "would link "+env.Path("AppData/Roaming/topgrade.toml"))
	assert.Contains(t, stdout, MsgDryRunNotice)
	testutil.AssertNotExists(t, env.Path("AppData"))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

func TestStatusCmd_JSON(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddFile("starship.toml", "")
	env.AddDir(".git")

	stdout, _, err := execute(t, "status", "-o", "json")
	require.NoError(t, err)

	var report status.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, env.ConfigRoot, report.Root)
	require.Len(t, report.Entries, 2)
	testutil.AssertNotExists(t, env.Path(".config/starship.toml"))
}

func TestStatusCmd_TextWithoutColor(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddFile("alacritty.yml", "")

	stdout, _, err := execute(t, "status")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, env.ConfigRoot+"\n"))
	assert.Contains(t, stdout, "missing")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestStatusCmd_BadFormat(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, _, err := execute(t, "status", "-o", "xml")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cleanfig version")
}
