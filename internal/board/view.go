package board

import (
	"strconv"

	"volunteer-board/internal/model"
)

type Mode string

const (
	ModeList   Mode = "list"
	ModeDetail Mode = "detail"
)

type ModalKind string

const (
	ModalNone          ModalKind = ""
	ModalCreate        ModalKind = "create"
	ModalEdit          ModalKind = "edit"
	ModalAdminDelete   ModalKind = "admin_delete"
	ModalCommentDelete ModalKind = "comment_delete"
)

// Modal 当前打开的对话框。同一时间最多一个，Password 是它自己的临时输入框，
// 对话框关闭时（取消或成功）一并清空。
type Modal struct {
	Kind     ModalKind `json:"kind"`
	TargetID int64     `json:"target_id,omitempty"` // edit / admin_delete 为记录 ID，comment_delete 为留言 ID
	Password string    `json:"password,omitempty"`
}

func (m Modal) Open() bool {
	return m.Kind != ModalNone
}

// DraftFields 创建/编辑表单中的文本输入，Hours 保留用户输入的原始字符串
type DraftFields struct {
	Date           string `json:"date"`
	Name           string `json:"name"`
	Organization   string `json:"organization"`
	Hours          string `json:"hours"`
	Location       string `json:"location"`
	Participants   string `json:"participants"`
	Description    string `json:"description"`
	AuthorName     string `json:"author_name"`
	AuthorPassword string `json:"author_password"`
}

// Draft 只在创建/编辑对话框打开期间存在，提交或取消后丢弃
type Draft struct {
	DraftFields
	Photos model.Photos `json:"photos"`
}

func draftFromRecord(r model.Record) *Draft {
	d := &Draft{
		DraftFields: DraftFields{
			Date:         r.Date,
			Name:         r.Name,
			Organization: r.Organization,
			Hours:        strconv.FormatFloat(r.Hours, 'f', -1, 64),
			Location:     r.Location,
			Participants: r.Participants,
			Description:  r.Description,
			AuthorName:   r.AuthorName,
			// 编辑时密码从空白开始
		},
		Photos: make(model.Photos, len(r.Photos)),
	}
	copy(d.Photos, r.Photos)
	return d
}

// ViewState 单个访问者的界面状态。
// Mode 为 detail 时 Selected 非空；Draft 只在 create/edit 对话框打开时非空。
type ViewState struct {
	Mode     Mode          `json:"mode"`
	Selected *model.Record `json:"selected,omitempty"`
	Modal    Modal         `json:"modal"`
	Draft    *Draft        `json:"draft,omitempty"`
	Sort     SortOrder     `json:"sort"`
}

func NewViewState() *ViewState {
	return &ViewState{Mode: ModeList, Sort: SortNewest}
}

func (vs *ViewState) toList() {
	vs.Mode = ModeList
	vs.Selected = nil
}

func (vs *ViewState) closeModal() {
	vs.Modal = Modal{}
	vs.Draft = nil
}

// rejectPassword 密码不匹配：对话框保持打开，但输入框清空
func (vs *ViewState) rejectPassword(action string) error {
	vs.Modal.Password = ""
	return &AuthorizationError{Action: action}
}
