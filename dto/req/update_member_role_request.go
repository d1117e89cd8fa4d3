package req

type UpdateMemberRoleRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin member"`
}
