package board

import (
	"context"

	"volunteer-board/internal/model"
	"volunteer-board/internal/store"

	"github.com/pkg/errors"
)

// Submit 提交当前打开的创建或编辑表单
func (c *Controller) Submit(ctx context.Context, vs *ViewState) error {
	switch vs.Modal.Kind {
	case ModalCreate:
		return c.SubmitCreate(ctx, vs)
	case ModalEdit:
		return c.SubmitEdit(ctx, vs)
	default:
		return ErrModalMismatch
	}
}

// Confirm 确认当前打开的删除对话框
func (c *Controller) Confirm(ctx context.Context, vs *ViewState) error {
	switch vs.Modal.Kind {
	case ModalAdminDelete:
		return c.ConfirmAdminDelete(ctx, vs)
	case ModalCommentDelete:
		return c.ConfirmCommentDelete(ctx, vs)
	default:
		return ErrModalMismatch
	}
}

func (c *Controller) SubmitCreate(ctx context.Context, vs *ViewState) error {
	if vs.Modal.Kind != ModalCreate || vs.Draft == nil {
		return ErrModalMismatch
	}
	d := vs.Draft
	if err := validateInputs(d.recordInput(), d.authorInput()); err != nil {
		c.log.Warn("新建记录校验未通过", "error", err)
		return err
	}

	payload := model.RecordInsert{
		RecordFields:   d.fields(),
		AuthorName:     d.authorInput().AuthorName,
		AuthorPassword: d.AuthorPassword,
	}
	if err := c.gw.Insert(ctx, model.ResourceRecords, payload); err != nil {
		c.log.Error("新建记录失败", "error", err)
		return errors.Wrap(err, "insert record")
	}
	c.log.Info("新建记录成功", "name", payload.Name, "date", payload.Date)

	vs.closeModal()
	return c.Reload(ctx, vs)
}

// SubmitEdit 编辑密码必须与记录的作者密码完全一致；作者信息不会被修改
func (c *Controller) SubmitEdit(ctx context.Context, vs *ViewState) error {
	if vs.Modal.Kind != ModalEdit || vs.Draft == nil {
		return ErrModalMismatch
	}
	id := vs.Modal.TargetID
	r, ok := c.store.Find(id)
	if !ok {
		return ErrRecordNotFound
	}
	if vs.Modal.Password != r.AuthorPassword {
		c.log.Warn("编辑密码不正确", "record_id", id)
		return vs.rejectPassword("edit")
	}
	if err := validateInputs(vs.Draft.recordInput()); err != nil {
		c.log.Warn("编辑记录校验未通过", "record_id", id, "error", err)
		return err
	}

	err := c.gw.Update(ctx, model.ResourceRecords, vs.Draft.fields(), store.Eq("id", id))
	if err != nil {
		c.log.Error("更新记录失败", "record_id", id, "error", err)
		return errors.Wrap(err, "update record")
	}
	c.log.Info("更新记录成功", "record_id", id)

	vs.closeModal()
	vs.toList()
	return c.Reload(ctx, vs)
}

// ConfirmAdminDelete 先删留言再删记录，留言删除失败时记录保持不动
func (c *Controller) ConfirmAdminDelete(ctx context.Context, vs *ViewState) error {
	if vs.Modal.Kind != ModalAdminDelete {
		return ErrModalMismatch
	}
	id := vs.Modal.TargetID
	if c.secret == "" || vs.Modal.Password != c.secret {
		c.log.Warn("管理员密码不正确", "record_id", id)
		return vs.rejectPassword("admin delete")
	}

	if err := c.gw.Delete(ctx, model.ResourceComments, store.Eq("record_id", id)); err != nil {
		c.log.Error("删除记录的留言失败", "record_id", id, "error", err)
		return errors.Wrap(err, "delete comments")
	}
	if err := c.gw.Delete(ctx, model.ResourceRecords, store.Eq("id", id)); err != nil {
		c.log.Error("删除记录失败", "record_id", id, "error", err)
		return errors.Wrap(err, "delete record")
	}
	c.log.Info("删除记录成功", "record_id", id)

	vs.closeModal()
	vs.toList()
	return c.Reload(ctx, vs)
}
