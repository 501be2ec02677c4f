package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/polymorpher/band-oracle-reader/internal/app"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"deploy", "plan", "networks", "version"})
	for _, flag := range []string{"network", "sender", "debug", "non-interactive", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestBindGlobalFlags(t *testing.T) {
	root := NewRootCmd()
	var ran *cobra.Command
	probe := &cobra.Command{Use: "probe", Run: func(cmd *cobra.Command, args []string) { ran = cmd }}
	root.AddCommand(probe)
	root.PersistentPreRunE = nil
	root.SetArgs([]string{"probe", "-n", "sepolia", "--sender", "deployer", "--debug", "--timeout", "30s"})

	require.NoError(t, root.Execute())
	require.NotNil(t, ran)

	v := viper.New()
	bindGlobalFlags(v, ran)

	assert.Equal(t, "sepolia", v.GetString("network"))
	assert.Equal(t, "deployer", v.GetString("sender"))
	assert.True(t, v.GetBool("debug"))
	assert.Equal(t, "30s", v.GetString("timeout"))
	assert.False(t, v.IsSet("non_interactive"))
}

func TestVersionCmd_SkipsAppInit(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "bandreader dev")
}

func TestGetApp(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		_, err := getApp(cmd)
		assert.EqualError(t, err, "app not initialized")
	})

	t.Run("present", func(t *testing.T) {
		want := &app.App{Config: &config.RuntimeConfig{}}
		cmd := &cobra.Command{}
		cmd.SetContext(context.WithValue(context.Background(), appKey, want))

		got, err := getApp(cmd)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}

func TestRunContext(t *testing.T) {
	t.Run("no deadline by default", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		ctx, cancel := runContext(cmd, &app.App{Config: &config.RuntimeConfig{}})
		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline)

		cancel()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("timeout sets a deadline", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		ctx, cancel := runContext(cmd, &app.App{Config: &config.RuntimeConfig{Timeout: time.Minute}})
		defer cancel()

		deadline, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})
}
