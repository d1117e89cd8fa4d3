package req

type AddChannelRequest struct {
	ChannelName string `json:"channelName" validate:"required,min=2,max=50"`
}
