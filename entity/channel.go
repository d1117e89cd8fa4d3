package entity

type Channel struct {
	BaseEntity
	Name        string `json:"name" gorm:"type:varchar(50)"`
	WorkspaceID string `json:"workspaceId" gorm:"type:varchar(255);not null"`

	Messages []Message `json:"-" gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE;"`
}
