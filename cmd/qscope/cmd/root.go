package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perclft/QubitScope/internal/snapstore"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
	"github.com/perclft/QubitScope/runtime"
)

var (
	flagOffline string
	flagRemote  bool
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:           "qscope",
	Short:         "qscope — quantum backend explorer and circuit runner",
	Long:          "Inspect backend calibration data (gate durations, error rates, coupling maps) and run circuits through the runtime service.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOffline, "offline", "", "read backends from a local snapshot store at this path")
	rootCmd.PersistentFlags().BoolVar(&flagRemote, "remote", false, "read backends from the runtime service")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "env file with runtime credentials")

	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(runCmd)
}

// openProvider resolves the backend source: a local snapshot store, the
// runtime service, or the built-in device library. The cleanup func must be
// called when done.
func openProvider() (provider.Provider, func(), error) {
	switch {
	case flagOffline != "":
		store, err := snapstore.Open(flagOffline)
		if err != nil {
			return nil, nil, err
		}
		return store.Provider(), func() { store.Close() }, nil
	case flagRemote:
		svc, err := openService()
		if err != nil {
			return nil, nil, err
		}
		return svc, func() { svc.Close() }, nil
	default:
		return fake.NewProvider(), func() {}, nil
	}
}

func openService() (*runtime.Service, error) {
	cfg, err := runtime.LoadConfig(flagEnvFile)
	if err != nil {
		return nil, fmt.Errorf("runtime credentials: %w", err)
	}
	return runtime.Open(cfg)
}
