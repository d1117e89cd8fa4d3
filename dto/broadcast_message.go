package dto

type BroadcastMessage struct {
	MessageID    string `json:"messageId"`
	ChannelID    string `json:"channelId"`
	WorkspaceID  string `json:"workspaceId"`
	SenderID     string `json:"senderId"`
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderAvatar,omitempty"`
	Body         string `json:"body"`
	CreatedAt    string `json:"createdAt"`
}
