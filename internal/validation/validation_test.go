package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		code  Code
	}{
		{"valid title", FieldTitle, "Hello", ""},
		{"empty title", FieldTitle, "", CodeEmpty},
		{"blank body", FieldBody, "   \n", CodeEmpty},
		{"long comment", FieldComment, strings.Repeat("a", 256), CodeTooLong},
		{"max length comment", FieldComment, strings.Repeat("a", 255), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.field, tt.value)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.code, fe.Code)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestCheck_UnknownField(t *testing.T) {
	err := Check(Field("password"), "secret")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCheckAll(t *testing.T) {
	assert.NoError(t, CheckAll(Value{FieldTitle, "t"}, Value{FieldBody, "b"}))

	err := CheckAll(Value{FieldTitle, ""}, Value{FieldBody, ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "title: empty")
	assert.Contains(t, err.Error(), "body: empty")
}

func TestFields(t *testing.T) {
	joined := CheckAll(Value{FieldTitle, ""}, Value{FieldBody, strings.Repeat("b", 300)})
	fields := Fields(fmt.Errorf("create bulletin: %w", joined))
	require.Len(t, fields, 2)
	assert.Equal(t, "validation.title.empty", fields[0].MessageKey())
	assert.Equal(t, "validation.body.too_long", fields[1].MessageKey())

	assert.Empty(t, Fields(nil))
	assert.Empty(t, Fields(common.ErrNotFound))
	assert.Empty(t, Fields(common.InvalidInput("bad")))
}
