package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// Todo is a task owned by exactly one user.
type Todo struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// TodoFields is the caller-supplied content of a new todo. There is no
// owner field: the owner always comes from the authenticated caller.
type TodoFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// TodoPatch is a partial update; nil fields are left unchanged.
type TodoPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Complete    *bool   `json:"complete,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Complete == nil
}

// Apply merges the patch into t.
func (p TodoPatch) Apply(t *Todo) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Complete != nil {
		t.Complete = *p.Complete
	}
}

// DecodeTodoPatch reads a JSON object into a TodoPatch. Fields other than
// name, description and complete are rejected with common.ErrUnknownField.
func DecodeTodoPatch(r io.Reader) (TodoPatch, error) {
	var p TodoPatch

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		// relies on the "json: unknown field " prefix of encoding/json errors
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return TodoPatch{}, fmt.Errorf("%w: %s", common.ErrUnknownField, field)
		}
		if errors.Is(err, io.EOF) {
			return TodoPatch{}, fmt.Errorf("%w: empty patch body", common.ErrValidation)
		}
		return TodoPatch{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return TodoPatch{}, fmt.Errorf("%w: trailing data after patch object", common.ErrValidation)
	}

	return p, nil
}
