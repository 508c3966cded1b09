package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nylas "github.com/nhle/nylas-go"
)

var (
	configPath string
	log        nylas.Logger = nylas.NewColorLogger(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "nylas",
	Short: "A CLI companion for the Nylas API",
	Long: `nylas drives the hosted-authentication flow of the Nylas email,
calendar, and contacts API from the terminal: it prints the
authorization URL, exchanges the resulting code for an access token,
stores the token in the system keyring, and inspects the connected
account.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", nylas.DefaultConfigPath(),
		"path to the configuration file",
	)
}

// newClient loads the configuration file and builds an SDK client.
func newClient() (*nylas.Client, error) {
	cfg, err := nylas.LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	return nylas.NewClient(cfg, nylas.WithLogger(log))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
