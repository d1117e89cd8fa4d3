package req

// UpdateWorkspaceRequest is a partial update; nil fields are left untouched.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}
