package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Storage DTOs ---

type StorageAccountResponse struct {
	Id             uuid.UUID `json:"id"`
	Provider       string    `json:"provider"`
	AccountEmail   string    `json:"account_email"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConnectStorageResponse struct {
	AuthURL string `json:"auth_url"`
}

// --- Gallery DTOs ---

type CreateGalleryRequest struct {
	Title            string     `json:"title" validate:"required,min=2"`
	Description      string     `json:"description,omitempty"`
	StorageAccountId *uuid.UUID `json:"storage_account_id,omitempty"`
	RemoteFolderId   string     `json:"remote_folder_id,omitempty"`
	IsPublic         bool       `json:"is_public"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

type GalleryResponse struct {
	Id             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	StorageAccount *uuid.UUID `json:"storage_account_id,omitempty"`
	RemoteFolderId string     `json:"remote_folder_id,omitempty"`
	CoverURL       string     `json:"cover_url,omitempty"`
	IsPublic       bool       `json:"is_public"`
	SortOrder      int        `json:"sort_order"`
	CreatedAt      time.Time  `json:"created_at"`
}
