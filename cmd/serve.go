package cmd

import (
	"github.com/emrgen/strata/internal/config"
	"github.com/emrgen/strata/internal/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(Serve())
}

func Serve() *cobra.Command {
	var httpPort string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the strata server",
		Run: func(cmd *cobra.Command, args []string) {
			if httpPort == "" {
				httpPort = config.LoadConfig().HTTPPort
			}

			server.NewServer(httpPort).Start()
		},
	}

	command.Flags().StringVarP(&httpPort, "http-port", "p", "", "http port to listen on")

	return command
}
