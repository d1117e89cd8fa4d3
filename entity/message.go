package entity

type Message struct {
	BaseEntity
	Body        string `json:"body" gorm:"type:TEXT"`
	Images      string `json:"images,omitempty" gorm:"type:TEXT"`
	ChannelID   string `json:"channelId" gorm:"type:varchar(255);not null"`
	SenderID    string `json:"senderId" gorm:"type:varchar(255);not null"`
	WorkspaceID string `json:"workspaceId" gorm:"type:varchar(255);not null"`

	Channel Channel `json:"-" gorm:"foreignKey:ChannelID;references:ID"`
	Sender  User    `json:"-" gorm:"foreignKey:SenderID;references:ID"`
}
