package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/grovetools/restart-controller/config"
	"github.com/grovetools/restart-controller/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	runs [][]config.Entry
}

func (f *fakeDispatcher) Run(ctx context.Context, entries []config.Entry) {
	f.runs = append(f.runs, entries)
}

// withConfig points the commands at path and records dispatches instead of running them.
func withConfig(t *testing.T, path string) *fakeDispatcher {
	t.Helper()

	fake := &fakeDispatcher{}
	prevPath, prevDispatcher := configPath, newDispatcher
	configPath = path
	newDispatcher = func() dispatcher { return fake }
	t.Cleanup(func() {
		configPath, newDispatcher = prevPath, prevDispatcher
	})
	return fake
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := execute(root, append([]string{}, args...))
	return code, stdout.String(), stderr.String()
}

const sampleConfig = `[
  {"name": "web", "commands": ["cd /srv/web", "npm start"], "delay": 100},
  {"command": "systemctl restart nginx"}
]`

func TestRun_DispatchesEntriesInOrder(t *testing.T) {
	fake := withConfig(t, testutil.WriteConfig(t, "config.json", sampleConfig))

	code, _, stderr := runCLI()
	require.Equal(t, 0, code, stderr)
	require.Len(t, fake.runs, 1)

	entries := fake.runs[0]
	require.Len(t, entries, 2)
	assert.Equal(t, config.KindSession, entries[0].Kind)
	assert.Equal(t, "web", entries[0].Session.Name)
	assert.Equal(t, config.KindProcess, entries[1].Kind)
	assert.Equal(t, "systemctl restart nginx", entries[1].Process.Command)
}

func TestRun_EmptyListSucceeds(t *testing.T) {
	fake := withConfig(t, testutil.WriteConfig(t, "config.json", `[]`))

	code, _, _ := runCLI()
	assert.Equal(t, 0, code)
	require.Len(t, fake.runs, 1)
	assert.Empty(t, fake.runs[0])
}

func TestRun_ConfigErrorsExitNonZeroWithoutDispatch(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return t.TempDir() + "/absent.json" },
			wantErr: "does not exist",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return testutil.WriteConfig(t, "config.json", `[{"name": "web",`) },
			wantErr: "Configuration is invalid",
		},
		{
			name:    "top level object",
			path:    func(t *testing.T) string { return testutil.WriteConfig(t, "config.json", `{"name": "web", "commands": []}`) },
			wantErr: "Configuration is invalid",
		},
		{
			name:    "entry matching no variant",
			path:    func(t *testing.T) string { return testutil.WriteConfig(t, "config.json", `[{"cmd": "ls"}]`) },
			wantErr: "Configuration is invalid",
		},
		{
			name:    "directory instead of file",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: "cannot be read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := withConfig(t, tt.path(t))

			code, _, stderr := runCLI()
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.wantErr)
			assert.Empty(t, fake.runs)
		})
	}
}

func TestRun_RejectsPositionalArguments(t *testing.T) {
	fake := withConfig(t, testutil.WriteConfig(t, "config.json", sampleConfig))

	code, _, stderr := runCLI("/tmp/other.json")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
	assert.Empty(t, fake.runs)
}

func TestValidate_ListsEntriesWithoutDispatch(t *testing.T) {
	fake := withConfig(t, testutil.WriteConfig(t, "config.json", sampleConfig))

	code, stdout, stderr := runCLI("validate")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, fake.runs)

	assert.Contains(t, stdout, `session "web" (2 commands, delay 100ms)`)
	assert.Contains(t, stdout, "    npm start")
	assert.Contains(t, stdout, `process "systemctl restart nginx"`)
	assert.Contains(t, stdout, "configuration is valid")
}

func TestValidate_ExplicitFileAndFormats(t *testing.T) {
	withConfig(t, t.TempDir()+"/absent.json")

	yamlPath := testutil.WriteConfig(t, "entries.yaml", `
- name: worker
  commands: ["./worker"]
- command: echo done
`)
	code, stdout, stderr := runCLI("validate", yamlPath)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `session "worker"`)
	assert.Contains(t, stdout, `process "echo done"`)

	tomlPath := testutil.WriteConfig(t, "entries.toml", `
[[entry]]
name = "worker"
commands = ["./worker"]
delay = 50
`)
	code, stdout, stderr = runCLI("validate", tomlPath)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `session "worker" (1 commands, delay 50ms)`)
}

func TestValidate_JSONOutput(t *testing.T) {
	withConfig(t, testutil.WriteConfig(t, "config.json", sampleConfig))

	code, stdout, stderr := runCLI("validate", "--json")
	require.Equal(t, 0, code, stderr)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "web", got[0]["name"])
	assert.Equal(t, float64(100), got[0]["delay"])
	assert.Equal(t, "systemctl restart nginx", got[1]["command"])
}

func TestValidate_InvalidFileFails(t *testing.T) {
	withConfig(t, testutil.WriteConfig(t, "config.json", `[{"name": "web", "commands": "npm start"}]`))

	code, _, stderr := runCLI("validate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Configuration is invalid")
}

func TestSchemaCommand(t *testing.T) {
	withConfig(t, t.TempDir()+"/absent.json")

	code, stdout, stderr := runCLI("schema")
	require.Equal(t, 0, code, stderr)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, "array", schema["type"])
	assert.Contains(t, schema, "items")
}

func TestVersionCommandJSON(t *testing.T) {
	code, stdout, stderr := runCLI("version", "--json")
	require.Equal(t, 0, code, stderr)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "goVersion")
}
