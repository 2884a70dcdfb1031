package cmd

import (
	"wavefm/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the WaveFM HTTP server",
	Long:  `Start the WaveFM HTTP server, serving the catalog, playlist and auth API.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
