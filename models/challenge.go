// file: models/challenge.go
package models

import (
	"time"
)

type ChallengeState string
type ChallengeCategory string
type ChallengeDifficulty string

const (
	ChallengeStateVisible ChallengeState = "visible"
	ChallengeStateHidden  ChallengeState = "hidden"

	CategoryWeb       ChallengeCategory = "web"
	CategoryCrypto    ChallengeCategory = "crypto"
	CategoryForensics ChallengeCategory = "forensics"
	CategoryOSINT     ChallengeCategory = "osint"
	CategoryReverse   ChallengeCategory = "reverse"

	ChallengeDifficultyEasy   ChallengeDifficulty = "easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "hard"
)

type Challenge struct {
	ID          uint32              `gorm:"primarykey"`
	Title       string              `gorm:"size:100;unique;not null"`
	Category    ChallengeCategory   `gorm:"size:20;not null"`
	Difficulty  ChallengeDifficulty `gorm:"size:20;default:'medium'"`
	Description string              `gorm:"type:text;not null"`
	Points      uint                `gorm:"not null"`
	// Flag 只保存在服务端，任何面向玩家的序列化都不得包含
	Flag        string         `gorm:"size:255;not null" json:"-"`
	State       ChallengeState `gorm:"size:20;default:'hidden'"`
	SolvedCount uint           `gorm:"default:0"`
	Resources   []Resource     `gorm:"foreignKey:ChallengeID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Challenge) TableName() string {
	return "ctflab_challenge"
}
