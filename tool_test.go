package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"socialmedia/internal/model"
	"socialmedia/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runTool(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String(), errOut.String()
}

func TestMessagesTool(t *testing.T) {
	t.Cleanup(func() { configFile = "" })
	dsn := filepath.Join(t.TempDir(), "tool.db")
	t.Setenv("SOCIALMEDIA_DATABASE_DSN", dsn)

	db, err := openDB(context.Background(), store.DriverSQLite, dsn)
	require.NoError(t, err)
	a, err := newApp(db, zap.NewNop().Sugar())
	require.NoError(t, err)
	ctx := context.Background()
	_, err = a.accounts.Register(ctx, model.Credentials{Username: "foo", Password: "default"})
	require.NoError(t, err)
	_, err = a.messages.CreateMessage(ctx, model.NewMessage{PostedBy: 1, MessageText: "first", TimePostedEpoch: 10})
	require.NoError(t, err)
	_, err = a.messages.CreateMessage(ctx, model.NewMessage{PostedBy: 1, MessageText: "second", TimePostedEpoch: 20})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, _ := runTool(t, "messages", "list")
	assert.Equal(t, "1,1,first,10\n2,1,second,20\n", out)

	out, errOut := runTool(t, "messages", "delete", "1", "x", "9")
	assert.Equal(t, "Deleted message: 1\nNo message: 9\n", out)
	assert.Contains(t, errOut, "Invalid message ID: x")

	out, _ = runTool(t, "messages", "list")
	assert.Equal(t, "2,1,second,20\n", out)
}
