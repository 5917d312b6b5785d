package forms

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormRequiresText(t *testing.T) {
	v := validator.New()

	form := &PostForm{Text: "   "}
	assert.False(t, form.Validate(v))
	assert.Contains(t, form.Errors, "text")

	form = &PostForm{Text: "hello"}
	assert.True(t, form.Validate(v))
	assert.Empty(t, form.Errors)
}

func TestPostFormGroupMustBeNumeric(t *testing.T) {
	v := validator.New()

	form := &PostForm{Text: "hello", Group: "not-a-number"}
	assert.False(t, form.Validate(v))
	assert.Contains(t, form.Errors, "group")
}

func TestPostFormGroupID(t *testing.T) {
	v := validator.New()

	form := &PostForm{Text: "hello"}
	require.True(t, form.Validate(v))
	_, ok := form.GroupID()
	assert.False(t, ok)

	form = &PostForm{Text: "hello", Group: "42"}
	require.True(t, form.Validate(v))
	id, ok := form.GroupID()
	require.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestPostFormAddError(t *testing.T) {
	form := &PostForm{}
	form.AddError("image", "broken")
	assert.False(t, form.Valid())
	assert.Equal(t, "broken", form.Errors["image"])
}

func TestCommentFormRequiresText(t *testing.T) {
	v := validator.New()

	form := &CommentForm{Text: "\n\t "}
	assert.False(t, form.Validate(v))
	assert.Contains(t, form.Errors, "text")

	form = &CommentForm{Text: "nice post"}
	assert.True(t, form.Validate(v))
	assert.Equal(t, "nice post", form.Text)
}

func TestFormsTrimWhitespace(t *testing.T) {
	v := validator.New()

	form := &PostForm{Text: "  padded  "}
	require.True(t, form.Validate(v))
	assert.Equal(t, "padded", form.Text)
}
