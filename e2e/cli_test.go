package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/royalsquare/internal/api"
	"github.com/mcoot/royalsquare/internal/api/response"
	"github.com/mcoot/royalsquare/internal/cli"
	"github.com/mcoot/royalsquare/internal/factory"
	"github.com/mcoot/royalsquare/internal/testutil"
)

// startTestServer runs the full application over HTTP with the default dictionary
func startTestServer(t *testing.T) string {
	t.Helper()

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)
	require.NoError(t, app.LoadDictionary(context.Background(), ""))

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
		HubManager:        app.HubManager,
		Clock:             app.Clock,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		_ = app.Close()
		server.Close()
	})
	return server.URL
}

// cliRunner executes CLI commands in-process
type cliRunner struct {
	serverURL string
}

func (r *cliRunner) run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(fullArgs)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func runJSON[T any](t *testing.T, r *cliRunner, args ...string) T {
	t.Helper()
	out, err := r.run(context.Background(), args...)
	require.NoError(t, err, out)

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCLI_Health(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}

	health := runJSON[response.Health](t, r, "health")
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 20, health.DictionaryWords)
}

func TestCLI_FullGame(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}

	game := runJSON[response.Game](t, r, "game", "create", "--start")
	require.NotEmpty(t, game.ID)
	assert.Equal(t, "in_progress", game.Status)

	// Opening word through the center
	moved := runJSON[response.Move](t, r, "game", "move", game.ID, "игра", "h", "2", "0")
	assert.Equal(t, 4, moved.Score)
	assert.Equal(t, 2, moved.Game.CurrentPlayer)

	// Rejected move surfaces the reason code
	out, err := r.run(context.Background(), "game", "move", game.ID, "слово", "horizontal", "0", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_connected", out)

	// Player 2 plays from a selected cell
	selected := runJSON[response.Game](t, r, "game", "select", game.ID, "3", "0")
	require.NotNil(t, selected.Selected)

	moved = runJSON[response.Move](t, r, "game", "move", game.ID, "нос", "горизонтально")
	assert.Equal(t, 2, moved.Player)
	assert.Equal(t, 3, moved.Score)

	check := runJSON[response.WordCheck](t, r, "word", "check", game.ID, "НОС")
	assert.True(t, check.InDictionary)
	assert.True(t, check.Used)

	got := runJSON[response.Game](t, r, "game", "get", game.ID)
	assert.Equal(t, response.Scores{Player1: 4, Player2: 3}, got.Scores)
	assert.Equal(t, []string{"Н", "О", "С", "", ""}, got.Board[3])

	// Restart clears the board
	restarted := runJSON[response.Game](t, r, "game", "new", game.ID)
	assert.Empty(t, restarted.UsedWords)
	assert.Equal(t, response.Scores{}, restarted.Scores)

	out, err = r.run(context.Background(), "game", "delete", game.ID)
	require.NoError(t, err, out)

	_, err = r.run(context.Background(), "game", "get", game.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAME_NOT_FOUND")
}

func TestCLI_Summaries(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}

	summaries := runJSON[[]response.GameSummary](t, r, "summaries")
	assert.Empty(t, summaries)
}

func TestCLI_TextOutput(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}

	game := runJSON[response.Game](t, r, "game", "create", "--start")
	_, err := r.run(context.Background(), "game", "move", game.ID, "игра", "h", "2", "0")
	require.NoError(t, err)

	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", r.serverURL, "game", "get", game.ID})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Game: "+game.ID)
	assert.Contains(t, text, "Scores: player 1 4, player 2 0")
	assert.Contains(t, text, " 2 | И  Г  Р  А  . |")
}

func TestCLI_Events(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}
	game := runJSON[response.Game](t, r, "game", "create")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	out, err := r.run(ctx, "events", game.ID, "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2, out)

	var connected, snapshot cli.SSEEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &connected))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &snapshot))
	assert.Equal(t, "connected", connected.Event)
	assert.Equal(t, "state", snapshot.Event)
	assert.Contains(t, snapshot.Data, `"type":"snapshot"`)
}

func TestCLI_InvalidOutputFormat(t *testing.T) {
	r := &cliRunner{serverURL: startTestServer(t)}

	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--server", r.serverURL, "--output", "yaml", "health"})
	assert.Error(t, cmd.Execute())
}
