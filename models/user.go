// file: models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

type UserRole string
type UserStatus string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"

	StatusActive UserStatus = "active"
	StatusBanned UserStatus = "banned"
)

type User struct {
	ID       uint32 `gorm:"primarykey" json:"id"`
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	// 队伍为自由填写的名称（区分大小写），不单独建表
	TeamName string     `gorm:"size:100" json:"team_name,omitempty"`
	Year     string     `gorm:"size:20" json:"year,omitempty"`
	Role     UserRole   `gorm:"size:20;not null;default:'user'" json:"role"`
	Status   UserStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	// TotalScore 只是读缓存，真实分数以解题记录聚合为准
	TotalScore uint      `gorm:"not null;default:0" json:"total_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "ctflab_user"
}

// BeforeSave GORM Hook，在保存用户前自动哈希密码
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
