package bulletin

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"strconv"

	"volunteer-board/internal/board"
	"volunteer-board/internal/global/jwt"
	"volunteer-board/internal/global/logger"
	"volunteer-board/internal/global/pictureBed"
	"volunteer-board/internal/global/response"
	"volunteer-board/internal/global/session"
	"volunteer-board/internal/model"
	"volunteer-board/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler 把 HTTP 请求翻译成对会话界面状态的操作
type Handler struct {
	ctrl     *board.Controller
	sessions session.Store
	log      *slog.Logger
}

func NewHandler(ctrl *board.Controller, sessions session.Store, log *slog.Logger) *Handler {
	return &Handler{ctrl: ctrl, sessions: sessions, log: log}
}

// action 修改 vs 并返回额外数据；返回 nil 时响应为当前界面状态
type action func(c *gin.Context, vs *board.ViewState) (any, error)

// act 读取会话状态，执行操作后无论成败都写回（拒绝操作也会清空密码框）
func (h *Handler) act(fn action) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := jwt.GetPayload(c)
		if !ok {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}
		ctx := c.Request.Context()

		vs := board.NewViewState()
		found, err := h.sessions.Load(ctx, payload.SessionID, vs)
		if err != nil {
			h.log.Error("读取会话失败", "session_id", payload.SessionID, "error", err)
			response.Fail(c, response.ErrSession.WithOrigin(err))
			return
		}
		if !found {
			// 会话过期后从初始状态重新开始
			vs = board.NewViewState()
		}

		if !h.ctrl.Store().Loaded() {
			if err := h.ctrl.Reload(ctx, vs); err != nil {
				h.fail(c, err)
				return
			}
		} else {
			// 快照由所有会话共享，其他会话的修改可能已让本会话的选中记录过期
			h.ctrl.Reconcile(vs)
		}

		data, actErr := fn(c, vs)

		if err := h.sessions.Save(ctx, payload.SessionID, vs); err != nil {
			h.log.Error("保存会话失败", "session_id", payload.SessionID, "error", err)
			response.Fail(c, response.ErrSession.WithOrigin(err))
			return
		}
		if actErr != nil {
			h.fail(c, actErr)
			return
		}
		if data == nil {
			data = h.render(vs)
		}
		response.Success(c, data)
	}
}

// fail 按错误类别转换成响应码
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		verr *board.ValidationError
		ireq *invalidRequest
		rerr *response.Error
	)
	switch {
	case errors.As(err, &rerr):
		response.Fail(c, rerr)
	case errors.As(err, &ireq):
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(ireq.err))
	case errors.As(err, &verr):
		response.Fail(c, response.ErrValidation.WithTips(verr.Fields...))
	case board.IsAuthorization(err):
		response.Fail(c, response.ErrForbidden)
	case errors.Is(err, board.ErrRecordNotFound), errors.Is(err, board.ErrCommentNotFound):
		response.Fail(c, response.ErrNotFound)
	case errors.Is(err, board.ErrModalMismatch), errors.Is(err, board.ErrNoSelection):
		response.Fail(c, response.ErrConflict.WithOrigin(err))
	case errors.Is(err, board.ErrPhotoIndex):
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
	case store.IsRemote(err), store.IsDecode(err):
		response.Fail(c, response.ErrStore.WithOrigin(err))
	default:
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
	}
}

// invalidRequest 请求体或路径参数无法解析
type invalidRequest struct{ err error }

func (e *invalidRequest) Error() string { return e.err.Error() }

// NewSession 创建新的访问者会话
func (h *Handler) NewSession(c *gin.Context) {
	id := session.NewID()
	vs := board.NewViewState()
	ctx := c.Request.Context()

	if !h.ctrl.Store().Loaded() {
		if err := h.ctrl.Store().Reload(ctx); err != nil {
			h.log.Error("加载记录失败", "error", err)
		}
	}
	if err := h.sessions.Save(ctx, id, vs); err != nil {
		h.log.Error("保存会话失败", "error", err)
		response.Fail(c, response.ErrSession.WithOrigin(err))
		return
	}
	token, err := jwt.CreateToken(jwt.Payload{SessionID: id})
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	logger.WithContext(h.log, c).Info("新会话", "session_id", id)
	response.Success(c, gin.H{"token": token, "state": h.render(vs)})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) state(*gin.Context, *board.ViewState) (any, error) {
	return nil, nil
}

func (h *Handler) reload(c *gin.Context, vs *board.ViewState) (any, error) {
	return nil, h.ctrl.Reload(c.Request.Context(), vs)
}

func (h *Handler) selectRecord(c *gin.Context, vs *board.ViewState) (any, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.Select(vs, id)
}

func (h *Handler) back(_ *gin.Context, vs *board.ViewState) (any, error) {
	return nil, h.ctrl.Back(vs)
}

type sortReq struct {
	Order board.SortOrder `json:"order" binding:"required"`
}

func (h *Handler) setSort(c *gin.Context, vs *board.ViewState) (any, error) {
	var req sortReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.SetSort(vs, req.Order)
}

func (h *Handler) openCreate(_ *gin.Context, vs *board.ViewState) (any, error) {
	return nil, h.ctrl.OpenCreate(vs)
}

func (h *Handler) openEdit(c *gin.Context, vs *board.ViewState) (any, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.OpenEdit(vs, id)
}

func (h *Handler) openAdminDelete(c *gin.Context, vs *board.ViewState) (any, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.OpenAdminDelete(vs, id)
}

func (h *Handler) openCommentDelete(c *gin.Context, vs *board.ViewState) (any, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.OpenCommentDelete(vs, id)
}

func (h *Handler) closeModal(_ *gin.Context, vs *board.ViewState) (any, error) {
	h.ctrl.CloseModal(vs)
	return nil, nil
}

func (h *Handler) updateDraft(c *gin.Context, vs *board.ViewState) (any, error) {
	var req board.DraftFields
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.UpdateDraft(vs, req)
}

func readPhoto(fh *multipart.FileHeader) (pictureBed.PhotoFile, error) {
	f, err := fh.Open()
	if err != nil {
		return pictureBed.PhotoFile{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return pictureBed.PhotoFile{}, err
	}
	return pictureBed.PhotoFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// readPhotos 只读取剩余名额内的前 capacity 个文件，其余的不打开
func readPhotos(headers []*multipart.FileHeader, capacity int) ([]pictureBed.PhotoFile, error) {
	if len(headers) > capacity {
		headers = headers[:capacity]
	}
	files := make([]pictureBed.PhotoFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readPhoto(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// stagePhotos 表单字段 photos 可以有多个文件
func (h *Handler) stagePhotos(c *gin.Context, vs *board.ViewState) (any, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, &invalidRequest{err}
	}
	headers := form.File["photos"]
	if len(headers) == 0 {
		return nil, &invalidRequest{errors.New("missing photos")}
	}
	capacity := model.MaxPhotos
	if vs.Draft != nil {
		capacity = max(model.MaxPhotos-len(vs.Draft.Photos), 0)
	}
	files, err := readPhotos(headers, capacity)
	if err != nil {
		return nil, response.ErrPhotoRejected.WithOrigin(err)
	}
	accepted, err := h.ctrl.StagePhotos(c.Request.Context(), vs, files)
	if err != nil {
		return nil, err
	}
	return gin.H{"accepted": accepted, "state": h.render(vs)}, nil
}

func (h *Handler) removePhoto(c *gin.Context, vs *board.ViewState) (any, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.RemoveStagedPhoto(vs, index)
}

type passwordReq struct {
	Password *string `json:"password"`
}

// submit 编辑时请求体带上编辑密码；创建时请求体可以为空
func (h *Handler) submit(c *gin.Context, vs *board.ViewState) (any, error) {
	var req passwordReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, &invalidRequest{err}
		}
	}
	if req.Password != nil {
		if err := h.ctrl.SetModalPassword(vs, *req.Password); err != nil {
			return nil, err
		}
	}
	return nil, h.ctrl.Submit(c.Request.Context(), vs)
}

func (h *Handler) confirm(c *gin.Context, vs *board.ViewState) (any, error) {
	var req passwordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &invalidRequest{err}
	}
	if req.Password != nil {
		if err := h.ctrl.SetModalPassword(vs, *req.Password); err != nil {
			return nil, err
		}
	}
	return nil, h.ctrl.Confirm(c.Request.Context(), vs)
}

func (h *Handler) addComment(c *gin.Context, vs *board.ViewState) (any, error) {
	var req board.CommentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &invalidRequest{err}
	}
	return nil, h.ctrl.AddComment(c.Request.Context(), vs, req)
}
