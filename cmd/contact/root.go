package main

import (
	"github.com/spf13/cobra"

	"github.com/givers/contact/internal/config"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "contact",
		Short:         "Contact page: web server and terminal form",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	loadConfig := func() (*config.Config, error) {
		return config.Load(envFile)
	}
	root.AddCommand(newServeCmd(loadConfig), newTUICmd(loadConfig))
	return root
}
