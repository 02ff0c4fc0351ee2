package validation

import (
	"testing"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/apperr"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidInputPasses(t *testing.T) {
	req := dto.CreateItemRequest{
		Title:       "九成新山地车",
		Description: "骑了一个学期，刹车变速都正常。",
		Contact:     "微信 abc123",
		TradeMethod: "face_to_face",
		Condition:   "used",
	}
	assert.NoError(t, Struct(req))
}

func TestStruct_FieldMessagesUseFormWording(t *testing.T) {
	req := dto.CreateItemRequest{
		Title:       "短",
		Description: "太短",
		Contact:     "q",
	}
	err := Struct(req)
	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)

	got := map[string]string{}
	for _, fe := range verr.Fields {
		got[fe.Field] = fe.Message
	}
	assert.Equal(t, "物品标题太短，请至少输入2个字符", got["title"])
	assert.Equal(t, "物品描述太短，请至少输入10个字符", got["description"])
	assert.Equal(t, "联系方式太短，请至少输入2个字符", got["contact"])
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	req := dto.CreateReviewRequest{Rating: 9}
	err := Struct(req)
	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)

	fields := map[string]bool{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["reviewed_user_id"])
	assert.True(t, fields["rating"])
	assert.NotContains(t, fields, "ReviewedUserID")
}

func TestStruct_TagFallbackMessages(t *testing.T) {
	req := dto.CreateItemRequest{
		Title:       "好东西",
		Description: "描述足够长了，十个字符以上。",
		Contact:     "电话 1234",
		TradeMethod: "teleport",
	}
	err := Struct(req)
	verr, ok := apperr.AsValidation(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "trade_method", verr.Fields[0].Field)
	assert.Equal(t, "无效的选项", verr.Fields[0].Message)
}
