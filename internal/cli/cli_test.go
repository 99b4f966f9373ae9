package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/contactkit"
	"github.com/optimode/contactkit/types"
)

// setupCommand returns the root command with captured output, run from an
// empty directory so no local config leaks in.
func setupCommand(t *testing.T, args ...string) (*cobra.Command, *strings.Builder, *strings.Builder) {
	t.Helper()
	t.Chdir(t.TempDir())
	cmd := NewRootCommand()
	stdout, stderr := &strings.Builder{}, &strings.Builder{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd, stdout, stderr
}

func decodeResult(t *testing.T, out string) contactkit.Result {
	t.Helper()
	var res contactkit.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}

func TestEmailCommand(t *testing.T) {
	cmd, stdout, _ := setupCommand(t, "email", "user@example.com")
	require.NoError(t, cmd.Execute())

	res := decodeResult(t, stdout.String())
	assert.True(t, res.Valid)
	assert.Equal(t, contactkit.KindEmail, res.Kind)
	assert.Equal(t, types.KeyEmailValidFormat, res.MessageKey)
}

func TestEmailCommand_Suggestion(t *testing.T) {
	cmd, stdout, _ := setupCommand(t, "email", "user@gmial.com", "--tier", "free")
	require.NoError(t, cmd.Execute())

	res := decodeResult(t, stdout.String())
	assert.Equal(t, "user@gmail.com", res.Suggestion)
}

func TestPhoneCommand(t *testing.T) {
	cmd, stdout, _ := setupCommand(t, "phone", "054-123-4567", "--region", "IL", "--lang", "he")
	require.NoError(t, cmd.Execute())

	res := decodeResult(t, stdout.String())
	assert.True(t, res.Valid)
	assert.Equal(t, "IL", res.Region)
	assert.Equal(t, types.KeyPhoneValidFormat, res.MessageKey)
}

func TestPhoneCommand_DefaultRegionFlag(t *testing.T) {
	cmd, stdout, _ := setupCommand(t, "phone", "0412 345 678", "--default_region", "AU")
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "AU", decodeResult(t, stdout.String()).Region)
}

func TestMessagesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"EMAIL_VALID_FORMAT":"Looks good"}`), 0o600))

	cmd, stdout, _ := setupCommand(t, "email", "user@example.com", "--messages_dir", dir)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Looks good", decodeResult(t, stdout.String()).Message)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing argument", []string{"email"}, "accepts 1 arg(s)"},
		{"bad config", []string{"email", "a@b.co", "--tier", "gold"}, `tier must be "free" or "pro"`},
		{"smtp without sender", []string{"email", "a@b.co", "--tier", "pro", "--verify_smtp"}, "smtp_mail_from"},
		{"unreachable redis", []string{"phone", "0541234567", "--cache_backend", "redis", "--redis_url", "redis://127.0.0.1:1"}, "connect cache"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := setupCommand(t, tt.args...)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
