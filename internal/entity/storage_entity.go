package entity

import (
	"time"

	"github.com/google/uuid"
)

type StorageProvider string

const (
	StorageProviderGoogleDrive StorageProvider = "google_drive"
	StorageProviderDropbox     StorageProvider = "dropbox"
	StorageProviderMicrosoft   StorageProvider = "microsoft"
)

// StorageAccount tokens are stored encrypted; the service layer decrypts
// them only when talking to the provider.
type StorageAccount struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Provider       StorageProvider
	AccountEmail   string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Gallery struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	StorageAccountId *uuid.UUID
	Title            string
	Description      string
	RemoteFolderId   string
	CoverURL         string
	IsPublic         bool
	SortOrder        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
