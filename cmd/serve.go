package cmd

import (
	"volunteer-board/cmd/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `启动 HTTP 服务。配置不完整时服务照常启动，
但 /bulletin 下的接口统一返回 503 并列出缺失的配置项。`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	server.Init()
	return server.Run()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
