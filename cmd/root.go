package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/config"
)

func Root(config *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{}
	rootCmd.AddCommand(server(config))
	return rootCmd
}
