package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kariqs/klenhub-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	// Flag variables outlive a single Execute.
	migrateTo, migrateSteps, migrateAll = "", 1, false

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "disabled")

	out, err := run(t, "token", "--email", "admin@klenhub.com")
	require.NoError(t, err)

	claims, err := utils.ParseToken("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "admin@klenhub.com", claims["email"])
	assert.Equal(t, utils.RoleAdmin, claims["role"])
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("LOG_LEVEL", "disabled")

	_, err := run(t, "token", "--email", "admin@klenhub.com")
	assert.ErrorIs(t, err, utils.ErrMissingSecret)
}

func TestMigrateAndSeedCommands(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "klenhub.db"))
	t.Setenv("LOG_LEVEL", "disabled")

	out, err := run(t, "migrate", "status")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "pending"))

	_, err = run(t, "migrate", "up", "--to", "20240305101500_create_products")
	require.NoError(t, err)
	out, err = run(t, "migrate", "status")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "applied"))

	_, err = run(t, "migrate", "up")
	require.NoError(t, err)

	out, err = run(t, "seed", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo data inserted")

	out, err = run(t, "seed", "down")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo data removed")

	out, err = run(t, "migrate", "down", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Rolled back 2 migration(s)")

	out, err = run(t, "migrate", "down", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Rolled back 4 migration(s)")
}

func TestMigrateUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("DB_DSN", "whatever")
	t.Setenv("LOG_LEVEL", "disabled")

	_, err := run(t, "migrate", "status")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
