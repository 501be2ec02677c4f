package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectTOML = `
artifacts = "out"
default_network = "local"

[rpc_endpoints]
local = "http://127.0.0.1:8545"
sepolia = "${SEPOLIA_RPC_URL}"

[chain_ids]
sepolia = 11155111

[etherscan.sepolia]
url = "https://sepolia.etherscan.io"

[senders.default]
type = "private_key"
private_key = "${PRIVATE_KEY}"
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("reads bandreader.toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFile, projectTOML)

		v := viper.New()
		v.Set("project_root", dir)
		v.Set("sender", "default")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, ProjectFile, cfg.ConfigSource)
		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, "local", cfg.Network, "falls back to default_network")
		assert.Equal(t, "out", cfg.ProjectConfig.ArtifactsDir())
		assert.Equal(t, "${SEPOLIA_RPC_URL}", cfg.ProjectConfig.RpcEndpoints["sepolia"], "values stay raw")
		assert.Equal(t, uint64(11155111), cfg.ProjectConfig.ChainIDs["sepolia"])
		assert.Equal(t, "https://sepolia.etherscan.io", cfg.ProjectConfig.Etherscan["sepolia"].URL)
		assert.Equal(t, config.SenderTypePrivateKey, cfg.ProjectConfig.Senders["default"].Type)
	})

	t.Run("explicit network wins over default", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFile, projectTOML)

		v := viper.New()
		v.Set("project_root", dir)
		v.Set("network", "sepolia")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "sepolia", cfg.Network)
	})

	t.Run("config file is optional", func(t *testing.T) {
		dir := t.TempDir()

		v := viper.New()
		v.Set("project_root", dir)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Empty(t, cfg.ConfigSource)
		assert.Empty(t, cfg.Network)
		assert.Equal(t, config.DefaultArtifactsDir, cfg.ProjectConfig.ArtifactsDir())
		assert.NotNil(t, cfg.ProjectConfig.RpcEndpoints)
		assert.NotNil(t, cfg.ProjectConfig.Senders)
	})

	t.Run("requires a project root", func(t *testing.T) {
		_, err := Provider(viper.New())
		assert.EqualError(t, err, "project root not set")
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFile, "[rpc_endpoints\nlocal = 1")

		v := viper.New()
		v.Set("project_root", dir)

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load bandreader.toml")
	})

	t.Run("loads .env before parsing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFile, projectTOML)
		writeFile(t, dir, ".env", "BANDREADER_TEST_DOTENV=from-dotenv\n")
		t.Cleanup(func() { os.Unsetenv("BANDREADER_TEST_DOTENV") })

		v := viper.New()
		v.Set("project_root", dir)

		_, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", os.Getenv("BANDREADER_TEST_DOTENV"))
	})
}

func TestSetupViper(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bandreader"), 0755))
	writeFile(t, filepath.Join(dir, ".bandreader"), "config.local.json", `{"network": "sepolia"}`)
	t.Setenv("BANDREADER_SENDER", "deployer")

	v := SetupViper(dir)

	assert.Equal(t, "sepolia", v.GetString("network"))
	assert.Equal(t, "deployer", v.GetString("sender"))
	assert.Equal(t, time.Duration(0), v.GetDuration("timeout"))
	assert.Equal(t, dir, v.GetString("project_root"))
	assert.False(t, v.GetBool("debug"))
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ProjectFile, "")
	nested := filepath.Join(root, "contracts", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	got, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}
