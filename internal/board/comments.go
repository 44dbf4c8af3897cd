package board

import (
	"context"
	"strings"

	"volunteer-board/internal/model"
	"volunteer-board/internal/store"

	"github.com/pkg/errors"
)

const timestampLayout = "2006-01-02 15:04:05"

func findComment(r *model.Record, id int64) (int, bool) {
	for i, cm := range r.Comments {
		if !cm.IsPending() && cm.ID == id {
			return i, true
		}
	}
	return -1, false
}

// AddComment 给当前详情页的记录添加留言。昵称和内容去掉首尾空白后保存，密码原样保存。
// 写入成功后先在本地追加一条带临时 ID 的留言，重新加载完成后整体替换。
func (c *Controller) AddComment(ctx context.Context, vs *ViewState, in CommentInput) error {
	if vs.Selected == nil {
		return ErrNoSelection
	}
	nickname := strings.TrimSpace(in.Nickname)
	content := strings.TrimSpace(in.Content)
	err := validateInputs(CommentInput{
		Nickname: nickname,
		Password: strings.TrimSpace(in.Password),
		Content:  content,
	})
	if err != nil {
		c.log.Warn("留言校验未通过", "record_id", vs.Selected.ID, "error", err)
		return err
	}
	// 记录可能已被其他会话删除
	if _, ok := c.store.Find(vs.Selected.ID); !ok {
		c.log.Warn("留言的目标记录已不存在", "record_id", vs.Selected.ID)
		vs.toList()
		return ErrRecordNotFound
	}

	payload := model.CommentInsert{
		RecordID:  vs.Selected.ID,
		Nickname:  nickname,
		Password:  in.Password,
		Content:   content,
		Timestamp: c.now().In(c.loc).Format(timestampLayout),
	}
	if err := c.gw.Insert(ctx, model.ResourceComments, payload); err != nil {
		c.log.Error("添加留言失败", "record_id", payload.RecordID, "error", err)
		return errors.Wrap(err, "insert comment")
	}
	c.log.Info("添加留言成功", "record_id", payload.RecordID, "nickname", nickname)

	vs.Selected.Comments = append(vs.Selected.Comments, model.Comment{
		RecordID:  payload.RecordID,
		Nickname:  payload.Nickname,
		Content:   payload.Content,
		Timestamp: payload.Timestamp,
		Pending:   model.NewPendingID(),
	})
	return c.Reload(ctx, vs)
}

// ConfirmCommentDelete 留言密码必须完全一致。删除成功后立即从本地列表移除，再重新加载。
func (c *Controller) ConfirmCommentDelete(ctx context.Context, vs *ViewState) error {
	if vs.Modal.Kind != ModalCommentDelete {
		return ErrModalMismatch
	}
	if vs.Selected == nil {
		vs.closeModal()
		return ErrNoSelection
	}
	id := vs.Modal.TargetID
	idx, ok := findComment(vs.Selected, id)
	if !ok {
		return ErrCommentNotFound
	}
	if vs.Modal.Password != vs.Selected.Comments[idx].Password {
		c.log.Warn("留言密码不正确", "comment_id", id)
		return vs.rejectPassword("delete comment")
	}

	if err := c.gw.Delete(ctx, model.ResourceComments, store.Eq("id", id)); err != nil {
		c.log.Error("删除留言失败", "comment_id", id, "error", err)
		return errors.Wrap(err, "delete comment")
	}
	c.log.Info("删除留言成功", "comment_id", id, "record_id", vs.Selected.ID)

	vs.Selected.Comments = append(vs.Selected.Comments[:idx:idx], vs.Selected.Comments[idx+1:]...)
	vs.closeModal()
	return c.Reload(ctx, vs)
}
