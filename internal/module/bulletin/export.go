package bulletin

import (
	"bytes"
	"fmt"
	"time"

	"volunteer-board/internal/board"
	"volunteer-board/internal/global/response"
	"volunteer-board/internal/model"
	"volunteer-board/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	recordSheet  = "记录"
	commentSheet = "留言"
)

type recordRow struct {
	ID           int64   `excel:"编号"`
	Date         string  `excel:"活动日期"`
	Name         string  `excel:"活动名称"`
	Organization string  `excel:"组织"`
	Hours        float64 `excel:"时长"`
	Location     string  `excel:"地点"`
	Participants string  `excel:"参与者"`
	Description  string  `excel:"描述"`
	AuthorName   string  `excel:"发布人"`
	Photos       int     `excel:"照片数"`
	Comments     int     `excel:"留言数"`
	CreatedAt    string  `excel:"创建时间"`
}

type commentRow struct {
	ID        int64  `excel:"编号"`
	RecordID  int64  `excel:"记录编号"`
	Nickname  string `excel:"昵称"`
	Content   string `excel:"内容"`
	Timestamp string `excel:"时间"`
}

// BuildWorkbook 记录和留言各一张表，照片只导出数量
func BuildWorkbook(records []model.Record) (*excelize.File, error) {
	rows := make([]recordRow, 0, len(records))
	var comments []commentRow
	for _, r := range records {
		rows = append(rows, recordRow{
			ID:           r.ID,
			Date:         r.Date,
			Name:         r.Name,
			Organization: r.Organization,
			Hours:        r.Hours,
			Location:     r.Location,
			Participants: r.Participants,
			Description:  r.Description,
			AuthorName:   r.AuthorName,
			Photos:       len(r.Photos),
			Comments:     len(r.Comments),
			CreatedAt:    r.CreatedAt.Format(time.DateTime),
		})
		for _, cm := range r.Comments {
			comments = append(comments, commentRow{
				ID:        cm.ID,
				RecordID:  cm.RecordID,
				Nickname:  cm.Nickname,
				Content:   cm.Content,
				Timestamp: cm.Timestamp,
			})
		}
	}
	if comments == nil {
		comments = []commentRow{}
	}

	f := excelize.NewFile()
	if err := tools.ExportToExcel(f, recordSheet, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := tools.ExportToExcel(f, commentSheet, comments); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	idx, _ := f.GetSheetIndex(recordSheet)
	f.SetActiveSheet(idx)
	return f, nil
}

// Export 导出当前快照
func (h *Handler) Export(c *gin.Context) {
	st := h.ctrl.Store()
	if !st.Loaded() {
		if err := st.Reload(c.Request.Context()); err != nil {
			h.log.Error("导出前加载记录失败", "error", err)
			h.fail(c, err)
			return
		}
	}

	f, err := BuildWorkbook(st.Sorted(board.SortNewest))
	if err != nil {
		h.log.Error("生成导出文件失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	name := fmt.Sprintf("volunteer-board-%s.xlsx", time.Now().Format("20060102"))
	tools.SendAttachment(c, name, tools.ExcelContentType, buf.Bytes())
}
