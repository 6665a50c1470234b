package msg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failure struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load(bytes.NewReader(defaultMessages)))

	assert.Equal(t, "Collision percentage should be between 0 and 100", GetMessage("cli.error.collision-range"))
	assert.Equal(t, "num_messages should be an integer, got abc", GetMessage("cli.error.not-integer", "num_messages", "abc"))
	assert.Equal(t, "num_messages should not be negative, got -1", GetMessage("cli.error.negative", "num_messages", -1))
	assert.Equal(t, "Message not found: missing.key", GetMessage("missing.key"))
}

func TestGetMessageStructuredArgs(t *testing.T) {
	require.NoError(t, Load(bytes.NewReader(defaultMessages)))

	failed := []failure{{ID: "3", Code: "InvalidParameterValue"}}
	assert.Equal(t,
		`Failed to send messages: [{"id":"3","code":"InvalidParameterValue"}]`,
		GetMessage("seed.failed", failed))

	assert.Equal(t,
		"Failed to configure AWS client: boom",
		GetMessage("cli.error.aws-config", errors.New("boom")))

	assert.Equal(t, "Failed to send messages: ", GetMessage("seed.failed", nil))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("seed:\n  failed: \"custom {0}\"\n"), 0o600))

	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Load(bytes.NewReader(defaultMessages)) })

	assert.Equal(t, "custom x", GetMessage("seed.failed", "x"))
	assert.Equal(t, "Message not found: app.start", GetMessage("app.start"))
}
