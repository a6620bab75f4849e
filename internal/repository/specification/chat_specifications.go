package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserID filters by owning user
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// BySessionID filters chat messages by session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByMessageIDs filters message sources by their parent messages
type ByMessageIDs struct {
	MessageIDs []uuid.UUID
}

func (s ByMessageIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id IN ?", s.MessageIDs)
}
