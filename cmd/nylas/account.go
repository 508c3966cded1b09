package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	nylas "github.com/nhle/nylas-go"
	"github.com/nhle/nylas-go/credential"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account behind the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		token, err := credential.Get(tokenKey)
		if err != nil {
			return fmt.Errorf("no stored access token (run 'nylas exchange' first): %w", err)
		}

		account, err := client.With(token).Account(cmd.Context())
		if err != nil {
			return err
		}

		label := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %s\n", label("Email:"), account.EmailAddress)
		fmt.Printf("%s %s\n", label("Name:"), account.Name)
		fmt.Printf("%s %s\n", label("Provider:"), account.Provider)
		fmt.Printf("%s %s\n", label("Sync state:"), account.SyncState)
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the application's accounts (requires client credentials)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		accounts, err := client.Accounts.List(cmd.Context(), nil)
		if err != nil {
			return err
		}

		for _, account := range accounts {
			fmt.Printf("%s\t%s\t%s\n", account.ID, account.EmailAddress, account.SyncState)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "config-init",
	Short: "Write a configuration file with the given application credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		apiServer, _ := cmd.Flags().GetString("api-server")

		cfg := nylas.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			APIServer:    apiServer,
		}
		// Validate before persisting so a bad API server never lands
		// in the file.
		if _, err := nylas.NewClient(cfg, nylas.WithLogger(nylas.NopLogger{})); err != nil {
			return err
		}

		if err := nylas.SaveConfigFile(configPath, cfg); err != nil {
			return err
		}
		log.Info("configuration written to " + configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().String("client-id", "", "application client ID")
	configInitCmd.Flags().String("client-secret", "", "application client secret")
	configInitCmd.Flags().String("api-server", "", "API server URL (defaults to production)")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(configInitCmd)
}
