package res

type MessageResponse struct {
	ID         string `json:"id"`
	Body       string `json:"body"`
	Images     string `json:"images,omitempty"`
	ChannelID  string `json:"channelId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	CreatedAt  string `json:"createdAt"`
}
