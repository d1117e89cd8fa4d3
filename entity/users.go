package entity

type User struct {
	BaseEntity
	Username string `json:"username" gorm:"unique;type:varchar(50)"`
	Email    string `json:"email" gorm:"unique;type:varchar(100)"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	Avatar   string `json:"avatar,omitempty" gorm:"text"`

	Messages    []Message         `json:"-" gorm:"foreignKey:SenderID"`
	Memberships []WorkspaceMember `json:"-" gorm:"foreignKey:UserID"`
}
