package board

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"volunteer-board/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("hours", func(fl validator.FieldLevel) bool {
		_, ok := parseHours(fl.Field().String())
		return ok
	})
	return v
}

// parseHours 时长必须是非负的有限实数
func parseHours(raw string) (float64, bool) {
	h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, false
	}
	return h, true
}

type recordInput struct {
	Date         string `json:"date" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	Hours        string `json:"hours" validate:"required,hours"`
}

type authorInput struct {
	AuthorName     string `json:"author_name" validate:"required"`
	AuthorPassword string `json:"author_password" validate:"required"`
}

// CommentInput 新留言的输入
type CommentInput struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// validateInputs 依次校验，汇总所有不合格的字段名
func validateInputs(inputs ...any) error {
	var fields []string
	for _, in := range inputs {
		err := validate.Struct(in)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// 只含空白的输入视为未填写
func (d *Draft) recordInput() recordInput {
	return recordInput{
		Date:         strings.TrimSpace(d.Date),
		Name:         strings.TrimSpace(d.Name),
		Organization: strings.TrimSpace(d.Organization),
		Hours:        strings.TrimSpace(d.Hours),
	}
}

func (d *Draft) authorInput() authorInput {
	return authorInput{
		AuthorName:     strings.TrimSpace(d.AuthorName),
		AuthorPassword: d.AuthorPassword,
	}
}

// fields 按表单内容构造要写入的记录字段
func (d *Draft) fields() model.RecordFields {
	hours, _ := parseHours(d.Hours)
	photos := make(model.Photos, len(d.Photos))
	copy(photos, d.Photos)
	return model.RecordFields{
		Date:         strings.TrimSpace(d.Date),
		Name:         strings.TrimSpace(d.Name),
		Organization: strings.TrimSpace(d.Organization),
		Hours:        hours,
		Location:     d.Location,
		Participants: d.Participants,
		Description:  d.Description,
		Photos:       photos,
	}
}
