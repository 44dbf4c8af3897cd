package bulletin

import (
	"time"

	"volunteer-board/internal/board"
	"volunteer-board/internal/model"
)

// 返回给前端的数据不含任何密码

type CommentView struct {
	ID        int64           `json:"id,omitempty"`
	PendingID model.PendingID `json:"pending_id,omitempty"`
	Nickname  string          `json:"nickname"`
	Content   string          `json:"content"`
	Timestamp string          `json:"timestamp"`
}

type RecordView struct {
	ID           int64         `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	Organization string        `json:"organization"`
	Hours        float64       `json:"hours"`
	Location     string        `json:"location"`
	Participants string        `json:"participants"`
	Description  string        `json:"description"`
	Photos       model.Photos  `json:"photos"`
	AuthorName   string        `json:"author_name"`
	CommentCount int           `json:"comment_count"`
	Comments     []CommentView `json:"comments,omitempty"`
}

type ModalView struct {
	Kind     board.ModalKind `json:"kind"`
	TargetID int64           `json:"target_id,omitempty"`
}

type DraftView struct {
	Date         string       `json:"date"`
	Name         string       `json:"name"`
	Organization string       `json:"organization"`
	Hours        string       `json:"hours"`
	Location     string       `json:"location"`
	Participants string       `json:"participants"`
	Description  string       `json:"description"`
	AuthorName   string       `json:"author_name"`
	Photos       model.Photos `json:"photos"`
	PhotoSlots   int          `json:"photo_slots"`
}

type StateView struct {
	Mode     board.Mode      `json:"mode"`
	Sort     board.SortOrder `json:"sort"`
	Selected *RecordView     `json:"selected,omitempty"`
	Modal    ModalView       `json:"modal"`
	Draft    *DraftView      `json:"draft,omitempty"`
	Records  []RecordView    `json:"records"`
	Stats    board.Stats     `json:"stats"`
}

func recordView(r model.Record, withComments bool) RecordView {
	v := RecordView{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		Date:         r.Date,
		Name:         r.Name,
		Organization: r.Organization,
		Hours:        r.Hours,
		Location:     r.Location,
		Participants: r.Participants,
		Description:  r.Description,
		Photos:       r.Photos,
		AuthorName:   r.AuthorName,
		CommentCount: len(r.Comments),
	}
	if v.Photos == nil {
		v.Photos = model.Photos{}
	}
	if withComments {
		v.Comments = make([]CommentView, 0, len(r.Comments))
		for _, cm := range r.Comments {
			v.Comments = append(v.Comments, CommentView{
				ID:        cm.ID,
				PendingID: cm.Pending,
				Nickname:  cm.Nickname,
				Content:   cm.Content,
				Timestamp: cm.Timestamp,
			})
		}
	}
	return v
}

// render 列表按会话的排序方式排列，统计每次从当前快照重新计算
func (h *Handler) render(vs *board.ViewState) StateView {
	st := h.ctrl.Store()
	sorted := st.Sorted(vs.Sort)
	out := StateView{
		Mode:    vs.Mode,
		Sort:    vs.Sort,
		Modal:   ModalView{Kind: vs.Modal.Kind, TargetID: vs.Modal.TargetID},
		Records: make([]RecordView, 0, len(sorted)),
		Stats:   st.Stats(),
	}
	for _, r := range sorted {
		out.Records = append(out.Records, recordView(r, false))
	}
	if vs.Selected != nil {
		sel := recordView(*vs.Selected, true)
		out.Selected = &sel
	}
	if d := vs.Draft; d != nil {
		out.Draft = &DraftView{
			Date:         d.Date,
			Name:         d.Name,
			Organization: d.Organization,
			Hours:        d.Hours,
			Location:     d.Location,
			Participants: d.Participants,
			Description:  d.Description,
			AuthorName:   d.AuthorName,
			Photos:       d.Photos,
			PhotoSlots:   model.MaxPhotos - len(d.Photos),
		}
		if out.Draft.Photos == nil {
			out.Draft.Photos = model.Photos{}
		}
	}
	return out
}
