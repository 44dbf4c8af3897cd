package cmd

import (
	"context"
	"fmt"

	"volunteer-board/config"
	"volunteer-board/internal/board"
	"volunteer-board/internal/module/bulletin"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records and comments to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			return err
		}

		gw, err := bulletin.NewGateway(cfg)
		if err != nil {
			return err
		}
		st := board.NewRecordStore(gw)
		if err := st.Reload(context.Background()); err != nil {
			return fmt.Errorf("读取记录失败: %w", err)
		}

		f, err := bulletin.BuildWorkbook(st.Records())
		if err != nil {
			return err
		}
		defer f.Close()

		output, _ := cmd.Flags().GetString("output")
		if err := f.SaveAs(output); err != nil {
			return fmt.Errorf("保存 %s 失败: %w", output, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已导出 %d 条记录到 %s\n", len(st.Records()), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "board.xlsx", "输出文件路径")
	rootCmd.AddCommand(exportCmd)
}
