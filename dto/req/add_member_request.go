package req

type AddMemberRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin member"`
}
