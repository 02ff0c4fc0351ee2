// Package validation executes the declarative rule tables attached to the
// request DTOs. Rules live in one place (the struct tags), run uniformly
// before any persistence attempt, and come back as field-level messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their json name so messages line up with the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Field-specific messages shown to users.
var fieldMessages = map[string]string{
	"title.min":       "物品标题太短，请至少输入2个字符",
	"title.max":       "物品标题过长，请控制在200个字符以内",
	"description.min": "物品描述太短，请至少输入10个字符",
	"contact.min":     "联系方式太短，请至少输入2个字符",
	"password.min":    "密码长度至少为8个字符",
	"username.min":    "用户名太短，请至少输入3个字符",
	"email.email":     "请输入有效的邮箱地址",
	"rating.min":      "评分必须在1到5之间",
	"rating.max":      "评分必须在1到5之间",
}

// Fallbacks per rule kind.
var tagMessages = map[string]string{
	"required": "该字段为必填项",
	"min":      "内容太短",
	"max":      "内容过长",
	"oneof":    "无效的选项",
	"email":    "请输入有效的邮箱地址",
	"hexcolor": "请输入有效的颜色值",
}

// Struct runs the rule table of s and converts any failures into a
// *apperr.ValidationError.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	out := &apperr.ValidationError{}
	for _, fe := range err.(validator.ValidationErrors) {
		out.Fields = append(out.Fields, apperr.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return "无效的输入"
}
