package cmd

import (
	"fmt"
	"os"

	"volunteer-board/config"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd 不带子命令时直接启动服务
var rootCmd = &cobra.Command{
	Use:   "volunteer-board",
	Short: "Volunteer activity bulletin board",
	Long: `volunteer-board 是志愿活动记录公告板的后端服务。
记录和留言保存在托管数据库（REST 接口）或自建 MySQL/SQLite 中，
浏览、编辑、删除等界面状态按会话保存在服务端。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		config.Set(cfg)
		return nil
	},
	RunE: runServe,
}

// Execute 由 main 调用
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("BOARD_CONFIG"), "配置文件路径，默认从工作目录向上查找 config.yaml")
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}
