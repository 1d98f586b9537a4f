package specification

import "gorm.io/gorm"

type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}
