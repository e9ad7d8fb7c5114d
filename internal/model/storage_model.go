package model

import (
	"time"

	"github.com/google/uuid"
)

// StorageAccount is a connected cloud-storage provider account. Tokens are
// AES-encrypted before they reach this row.
type StorageAccount struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_storage_accounts_user_provider"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_storage_accounts_user_provider"` // google_drive, dropbox, microsoft
	AccountEmail   string    `gorm:"type:varchar(255)"`
	AccessToken    string    `gorm:"type:text;not null"`
	RefreshToken   string    `gorm:"type:text"`
	TokenExpiresAt time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (StorageAccount) TableName() string {
	return "storage_accounts"
}

type Gallery struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	StorageAccountId *uuid.UUID `gorm:"type:uuid;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	RemoteFolderId   string    `gorm:"type:varchar(255)"` // provider-side folder/playlist id
	CoverURL         string    `gorm:"type:text"`
	IsPublic         bool      `gorm:"default:true"`
	SortOrder        int       `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Gallery) TableName() string {
	return "galleries"
}
