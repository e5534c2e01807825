package root

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/session"
	"misterMoAPI/internal/testutil/apitest"
)

type cli struct {
	t     *testing.T
	api   string
	state string
}

func newCLI(t *testing.T) *cli {
	srv := apitest.NewServer(t)
	return &cli{t: t, api: srv.URL, state: filepath.Join(t.TempDir(), "state.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api", c.api, "--state", c.state}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsRequireSignIn(t *testing.T) {
	c := newCLI(t)
	t.Setenv(session.EnvInitData, "")

	_, err := c.run("status")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestLoginThenTrackOffline(t *testing.T) {
	c := newCLI(t)
	t.Setenv(session.EnvInitData, apitest.InitData(t, 501))

	out, err := c.run("login")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Anna")
	assert.Contains(t, out, "BASIC")

	// Later runs use the cached session.
	t.Setenv(session.EnvInitData, "")

	out, err = c.run("weight", "82.5")
	require.NoError(t, err)
	assert.Contains(t, out, "82.5 kg")

	out, err = c.run("toggle", "shower")
	require.NoError(t, err)
	assert.Contains(t, out, "shower: done")
	assert.Contains(t, out, "20%")

	out, err = c.run("water", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "0.50 / 2.5 l")

	out, err = c.run("food", "300", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "300 / 1050")

	_, err = c.run("food", "300", "x")
	assert.Error(t, err)

	out, err = c.run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress")

	out, err = c.run("week")
	require.NoError(t, err)
	assert.Contains(t, out, "1 / 7 days")
	assert.Contains(t, out, "+0.0 kg")

	_, err = c.run("toggle", "not-a-task")
	assert.Error(t, err)
}

func TestScheduleCommand(t *testing.T) {
	c := newCLI(t)
	t.Setenv(session.EnvInitData, apitest.InitData(t, 502))

	out, err := c.run("schedule", "--date", "2026-10-12", "--fasting")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday (fasting)")
	assert.Contains(t, out, "(reflection)")
	assert.NotContains(t, out, "(motivation)")

	out, err = c.run("today", "--date", "2026-10-18")
	require.NoError(t, err)
	assert.Contains(t, out, "Sunday")
	assert.Contains(t, out, "mistermo measure")
}

func TestContentAndTier(t *testing.T) {
	c := newCLI(t)
	t.Setenv(session.EnvInitData, apitest.InitData(t, 503))

	out, err := c.run("content", "page", "3", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "requires premium")

	_, err = c.run("tier", "gold")
	assert.Error(t, err)

	_, err = c.run("tier", "premium")
	require.NoError(t, err)

	out, err = c.run("content", "page", "3", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "page 3 of 180")

	out, err = c.run("content", "panels")
	require.NoError(t, err)
	assert.Contains(t, out, "fitness-facebuilding")

	out, err = c.run("supplement", "zma")
	require.NoError(t, err)
	assert.Contains(t, out, "Dosage")
}

func TestLogout(t *testing.T) {
	c := newCLI(t)
	t.Setenv(session.EnvInitData, apitest.InitData(t, 504))
	_, err := c.run("login")
	require.NoError(t, err)

	t.Setenv(session.EnvInitData, "")
	_, err = c.run("logout")
	require.NoError(t, err)

	_, err = c.run("status")
	assert.ErrorIs(t, err, errNotSignedIn)
}
