package cmd

import (
	"errors"
	"fmt"

	"volunteer-board/config"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long:  `检查数据后端地址、凭证和管理员密码是否已配置，列出仍为空或占位值的配置项。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		err := cfg.Validate()

		var setupErr *config.SetupError
		if errors.As(err, &setupErr) {
			fmt.Fprintln(cmd.OutOrStdout(), "以下配置项缺失或仍为占位值：")
			for _, key := range setupErr.Missing {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", key)
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "配置完整，数据后端: %s，照片存储: %s\n", cfg.Store.Driver, cfg.Photos.Mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
