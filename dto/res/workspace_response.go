package res

type WorkspaceResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	JoinCode    string            `json:"joinCode"`
	Members     []MemberResponse  `json:"members"`
	Channels    []ChannelResponse `json:"channels"`
	CreatedAt   string            `json:"createdAt"`
}

type MemberResponse struct {
	MemberID string `json:"memberId"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

type ChannelResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DeletedWorkspaceResponse struct {
	ID string `json:"id"`
}
