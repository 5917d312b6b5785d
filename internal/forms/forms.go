// Package forms maps raw request fields onto validated post and comment
// drafts. A form that passes Validate carries no server-derived fields; the
// handler attaches author, post association and timestamps before the write.
package forms

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostForm carries the submitted fields for creating or editing a post.
// Group is the raw group id as submitted; an empty string means no group.
type PostForm struct {
	Text   string                `form:"text" validate:"required"`
	Group  string                `form:"group" validate:"omitempty,number"`
	Image  *multipart.FileHeader `form:"-" validate:"-"`
	Errors map[string]string     `form:"-" validate:"-"`
}

// CommentForm carries the submitted fields for adding a comment.
type CommentForm struct {
	Text   string            `form:"text" validate:"required"`
	Errors map[string]string `form:"-" validate:"-"`
}

// Validate normalizes and checks the post fields, recording field-level
// messages. Group existence and image well-formedness are checked by the
// handler, which owns the repositories, and reported via AddError.
func (f *PostForm) Validate(v *validator.Validate) bool {
	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)
	f.Errors = map[string]string{}
	if err := v.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Text":
				f.Errors["text"] = "Text is required"
			case "Group":
				f.Errors["group"] = "Group must be a numeric id"
			}
		}
	}
	return len(f.Errors) == 0
}

// GroupID resolves the raw group field to an id. The boolean is false when no
// group was submitted. Validate must have accepted the form first.
func (f *PostForm) GroupID() (uint, bool) {
	if f.Group == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(f.Group, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// AddError records a field-level message discovered outside struct validation.
func (f *PostForm) AddError(field, msg string) {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	f.Errors[field] = msg
}

// Valid reports whether any field error has been recorded.
func (f *PostForm) Valid() bool {
	return len(f.Errors) == 0
}

// Validate normalizes and checks the comment text.
func (f *CommentForm) Validate(v *validator.Validate) bool {
	f.Text = strings.TrimSpace(f.Text)
	f.Errors = map[string]string{}
	if err := v.Struct(f); err != nil {
		f.Errors["text"] = "Text is required"
	}
	return len(f.Errors) == 0
}
