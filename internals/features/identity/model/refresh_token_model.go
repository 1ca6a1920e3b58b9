package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel stores a hash of each issued refresh token. The raw
// token only ever lives in the client cookie.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refresh_token_id"`
	UserID    uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`
	Token     []byte    `gorm:"column:refresh_token_hash;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:refresh_token_expires_at;not null" json:"refresh_token_expires_at"`
	RevokedAt *time.Time `gorm:"column:refresh_token_revoked_at" json:"refresh_token_revoked_at,omitempty"`
	UserAgent *string   `gorm:"column:refresh_token_user_agent;size:255" json:"-"`
	IP        *string   `gorm:"column:refresh_token_ip;size:64" json:"-"`
	CreatedAt time.Time `gorm:"column:refresh_token_created_at;autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
