package main

import (
	"github.com/spf13/cobra"

	"github.com/givers/contact/internal/config"
	"github.com/givers/contact/internal/formspec"
	"github.com/givers/contact/internal/tui"
	"github.com/givers/contact/internal/validation"
)

func newTUICmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the contact form in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			spec, err := formspec.Load(cfg.FormFile)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), spec, validation.NewChecker(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
