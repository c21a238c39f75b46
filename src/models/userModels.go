package models

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
	Role     string `json:"role" gorm:"type:varchar(100)"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
