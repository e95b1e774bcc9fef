package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solarbi/savvy-planner/internal/cli"
)

func main() {
	command := NewSavvyCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewSavvyCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savvyctl [flags] [options]",
		Short: "savvyctl controls the Savvy planner service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdUpload())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdSSO())

	return cmd
}
