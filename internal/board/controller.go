package board

import (
	"context"
	"log/slog"
	"time"

	"volunteer-board/internal/global/pictureBed"
	"volunteer-board/internal/model"
	"volunteer-board/internal/store"
)

type Options struct {
	AdminSecret string
	Encoder     pictureBed.Encoder
	Location    *time.Location
	Logger      *slog.Logger
	Now         func() time.Time
}

// Controller 所有界面状态的变更入口。记录集合由所有会话共享，ViewState 属于单个访问者。
type Controller struct {
	gw      store.Gateway
	store   *RecordStore
	secret  string
	encoder pictureBed.Encoder
	loc     *time.Location
	now     func() time.Time
	log     *slog.Logger
}

func NewController(gw store.Gateway, st *RecordStore, opts Options) *Controller {
	c := &Controller{
		gw:      gw,
		store:   st,
		secret:  opts.AdminSecret,
		encoder: opts.Encoder,
		loc:     opts.Location,
		now:     opts.Now,
		log:     opts.Logger,
	}
	if c.encoder == nil {
		c.encoder = pictureBed.NewInlineEncoder(0)
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

func (c *Controller) Store() *RecordStore {
	return c.store
}

// Reload 重新加载并把当前会话的选中记录同步到新快照
func (c *Controller) Reload(ctx context.Context, vs *ViewState) error {
	if err := c.store.Reload(ctx); err != nil {
		c.log.Error("重新加载记录失败", "error", err)
		return err
	}
	c.Reconcile(vs)
	return nil
}

// Reconcile 用最新快照替换 Selected；记录已不存在时回到列表，指向已删除目标的对话框一并关闭
func (c *Controller) Reconcile(vs *ViewState) {
	switch vs.Modal.Kind {
	case ModalEdit, ModalAdminDelete:
		if _, ok := c.store.Find(vs.Modal.TargetID); !ok {
			vs.closeModal()
		}
	}
	if vs.Selected == nil {
		if vs.Modal.Kind == ModalCommentDelete {
			vs.closeModal()
		}
		return
	}
	r, ok := c.store.Find(vs.Selected.ID)
	if !ok {
		vs.toList()
		if vs.Modal.Kind == ModalCommentDelete {
			vs.closeModal()
		}
		return
	}
	vs.Selected = &r
	if vs.Modal.Kind == ModalCommentDelete {
		if _, ok := findComment(vs.Selected, vs.Modal.TargetID); !ok {
			vs.closeModal()
		}
	}
}

func (c *Controller) Select(vs *ViewState, id int64) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	r, ok := c.store.Find(id)
	if !ok {
		return ErrRecordNotFound
	}
	vs.Mode = ModeDetail
	vs.Selected = &r
	return nil
}

func (c *Controller) Back(vs *ViewState) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	vs.toList()
	return nil
}

func (c *Controller) SetSort(vs *ViewState, order SortOrder) error {
	if !order.Valid() {
		return &ValidationError{Fields: []string{"order"}}
	}
	vs.Sort = order
	return nil
}

func (c *Controller) OpenCreate(vs *ViewState) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	vs.Modal = Modal{Kind: ModalCreate}
	vs.Draft = &Draft{Photos: model.Photos{}}
	return nil
}

func (c *Controller) OpenEdit(vs *ViewState, id int64) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	r, ok := c.store.Find(id)
	if !ok {
		return ErrRecordNotFound
	}
	vs.Modal = Modal{Kind: ModalEdit, TargetID: id}
	vs.Draft = draftFromRecord(r)
	return nil
}

func (c *Controller) OpenAdminDelete(vs *ViewState, id int64) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	if _, ok := c.store.Find(id); !ok {
		return ErrRecordNotFound
	}
	vs.Modal = Modal{Kind: ModalAdminDelete, TargetID: id}
	return nil
}

// OpenCommentDelete 只能针对当前详情页里的留言
func (c *Controller) OpenCommentDelete(vs *ViewState, commentID int64) error {
	if vs.Modal.Open() {
		return ErrModalMismatch
	}
	if vs.Selected == nil {
		return ErrNoSelection
	}
	if _, ok := findComment(vs.Selected, commentID); !ok {
		return ErrCommentNotFound
	}
	vs.Modal = Modal{Kind: ModalCommentDelete, TargetID: commentID}
	return nil
}

func (c *Controller) SetModalPassword(vs *ViewState, password string) error {
	switch vs.Modal.Kind {
	case ModalEdit, ModalAdminDelete, ModalCommentDelete:
		vs.Modal.Password = password
		return nil
	default:
		return ErrModalMismatch
	}
}

// UpdateDraft 替换表单文本；编辑时作者名和作者密码不可修改
func (c *Controller) UpdateDraft(vs *ViewState, fields DraftFields) error {
	if vs.Draft == nil {
		return ErrModalMismatch
	}
	if vs.Modal.Kind == ModalEdit {
		fields.AuthorName = vs.Draft.AuthorName
		fields.AuthorPassword = vs.Draft.AuthorPassword
	}
	vs.Draft.DraftFields = fields
	return nil
}

// CloseModal 取消当前对话框，密码和表单一并丢弃
func (c *Controller) CloseModal(vs *ViewState) {
	vs.closeModal()
}
