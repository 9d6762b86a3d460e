package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/models"
)

// ReplyPrefix is prepended to reply subjects exactly once
const ReplyPrefix = "Re: "

// InterfaceMessageService defines the citizen messaging service
type InterfaceMessageService interface {
	SendMessage(senderID, recipientID uint, subject, content string) (*models.Message, error)
	GetInboxMessages(userID uint, page, limit int) ([]models.Message, int64, error)
	GetSentMessages(userID uint, page, limit int) ([]models.Message, int64, error)
	GetMessageByID(id, userID uint) (*models.Message, error)
	DeleteMessage(id, userID uint) (bool, error)
	GetUnreadMessageCount(userID uint) (int64, error)
	MarkAllMessagesAsRead(userID uint) (int64, error)
	ReplyToMessage(originalMessageID, senderID uint, content string) (*models.Message, error)
}

// MessageService handles sending, reading and deleting messages
type MessageService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMessageService creates a new message service
func NewMessageService(db *gorm.DB, cfg *config.Config) InterfaceMessageService {
	return &MessageService{
		DB:     db,
		Config: cfg,
	}
}

// SendMessage creates an unread message after checking that the recipient
// holds an elevated role. All fields are required.
func (s *MessageService) SendMessage(senderID, recipientID uint, subject, content string) (*models.Message, error) {
	if senderID == 0 || recipientID == 0 ||
		strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrMissingFields
	}

	var recipient models.User
	err := s.DB.
		Where("id = ? AND role IN ?", recipientID, []models.UserRole{models.RoleRepresentative, models.RoleStaff}).
		First(&recipient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRecipient
		}
		return nil, err
	}

	return s.createMessage(senderID, recipientID, subject, content)
}

// createMessage persists a message and reloads it with both parties attached
func (s *MessageService) createMessage(senderID, recipientID uint, subject, content string) (*models.Message, error) {
	message := models.Message{
		Subject:     subject,
		Content:     content,
		SenderID:    senderID,
		RecipientID: recipientID,
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return nil, err
	}

	var created models.Message
	err := s.DB.Preload("Sender").Preload("Recipient").First(&created, message.ID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetInboxMessages returns one page of messages addressed to the user,
// newest first, along with the total matching count
func (s *MessageService) GetInboxMessages(userID uint, page, limit int) ([]models.Message, int64, error) {
	return s.pageMessages("recipient_id = ?", userID, page, limit)
}

// GetSentMessages returns one page of messages the user sent, newest
// first, along with the total matching count
func (s *MessageService) GetSentMessages(userID uint, page, limit int) ([]models.Message, int64, error) {
	return s.pageMessages("sender_id = ?", userID, page, limit)
}

func (s *MessageService) pageMessages(condition string, userID uint, page, limit int) ([]models.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultRecordLimit
	}

	var total int64
	if err := s.DB.Model(&models.Message{}).Where(condition, userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := s.DB.
		Preload("Sender").
		Preload("Recipient").
		Where(condition, userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetMessageByID returns one message visible to the user. When the caller
// is the recipient and the message is unread, it transitions to read
// inside the same transaction.
func (s *MessageService) GetMessageByID(id, userID uint) (*models.Message, error) {
	var message models.Message
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Preload("Sender").
			Preload("Recipient").
			Where("id = ? AND (sender_id = ? OR recipient_id = ?)", id, userID, userID).
			First(&message).Error
		if err != nil {
			return err
		}

		if message.RecipientID == userID && !message.Read {
			if err := tx.Model(&models.Message{}).Where("id = ?", id).Update("read", true).Error; err != nil {
				return err
			}
			message.Read = true
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes a message when the user is its sender or
// recipient. Failure is reported as false, not an error; deletion is
// best effort by design.
func (s *MessageService) DeleteMessage(id, userID uint) (bool, error) {
	deleted := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		err := tx.
			Where("id = ? AND (sender_id = ? OR recipient_id = ?)", id, userID, userID).
			First(&message).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Delete(&message).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// GetUnreadMessageCount counts unread messages addressed to the user
func (s *MessageService) GetUnreadMessageCount(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAllMessagesAsRead transitions every unread message addressed to the
// user and reports how many changed
func (s *MessageService) MarkAllMessagesAsRead(userID uint) (int64, error) {
	result := s.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND `read` = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReplyToMessage sends a reply to the other party of an existing
// conversation. The subject gains a "Re: " prefix unless it already has
// one. Role checks are skipped: replies may flow back to citizens.
func (s *MessageService) ReplyToMessage(originalMessageID, senderID uint, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingFields
	}

	var original models.Message
	if err := s.DB.First(&original, originalMessageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if original.SenderID != senderID && original.RecipientID != senderID {
		return nil, ErrNotParticipant
	}

	recipientID := original.SenderID
	if original.SenderID == senderID {
		recipientID = original.RecipientID
	}

	subject := original.Subject
	if !strings.HasPrefix(subject, ReplyPrefix) {
		subject = ReplyPrefix + subject
	}

	return s.createMessage(senderID, recipientID, subject, content)
}
