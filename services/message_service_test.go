package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpep-http-service/models"
)

func TestSendMessageToElevatedRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	staff := createUser(t, db, "Staff One", models.RoleStaff)

	message, err := svc.SendMessage(citizen.ID, staff.ID, "Road repairs", "The main road needs attention.")
	require.NoError(t, err)

	assert.False(t, message.Read)
	assert.Equal(t, citizen.ID, message.SenderID)
	assert.Equal(t, staff.ID, message.RecipientID)
	assert.Equal(t, "Citizen One", message.Sender.Name)
	assert.Equal(t, "Staff One", message.Recipient.Name)
}

func TestSendMessageToCitizenRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	sender := createUser(t, db, "Citizen One", models.RoleCitizen)
	other := createUser(t, db, "Citizen Two", models.RoleCitizen)

	_, err := svc.SendMessage(sender.ID, other.ID, "Hello", "Just checking in.")
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	// Unknown recipient gets the same answer
	_, err = svc.SendMessage(sender.ID, 9999, "Hello", "Anyone there?")
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendMessageMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	staff := createUser(t, db, "Staff One", models.RoleStaff)

	_, err := svc.SendMessage(citizen.ID, staff.ID, "  ", "content")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.SendMessage(citizen.ID, staff.ID, "subject", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.SendMessage(0, staff.ID, "subject", "content")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestGetInboxMessagesPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		createMessage(t, db, citizen.ID, rep.ID,
			fmt.Sprintf("Subject %02d", i+1), base.Add(time.Duration(i)*time.Minute))
	}

	first, total, err := svc.GetInboxMessages(rep.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, first, 10)
	assert.Equal(t, "Subject 25", first[0].Subject)

	second, total, err := svc.GetInboxMessages(rep.ID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, second, 10)
	assert.Equal(t, "Subject 15", second[0].Subject)
	assert.Equal(t, "Subject 06", second[9].Subject)

	// Pages past the end are empty but keep the true total
	overflow, total, err := svc.GetInboxMessages(rep.ID, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, overflow)
}

func TestGetSentMessages(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	createMessage(t, db, citizen.ID, rep.ID, "First", base)
	createMessage(t, db, citizen.ID, rep.ID, "Second", base.Add(time.Hour))
	createMessage(t, db, rep.ID, citizen.ID, "Unrelated", base.Add(2*time.Hour))

	sent, total, err := svc.GetSentMessages(citizen.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, sent, 2)
	assert.Equal(t, "Second", sent[0].Subject)
}

func TestGetMessageByIDMarksReadForRecipientOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)
	message := createMessage(t, db, citizen.ID, rep.ID, "Road repairs",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	// Sender reading leaves the flag alone
	got, err := svc.GetMessageByID(message.ID, citizen.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)

	count, err := svc.GetUnreadMessageCount(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Recipient reading flips it, once
	got, err = svc.GetMessageByID(message.ID, rep.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	count, err = svc.GetUnreadMessageCount(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetMessageByIDNonParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)
	outsider := createUser(t, db, "Citizen Two", models.RoleCitizen)
	message := createMessage(t, db, citizen.ID, rep.ID, "Road repairs",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	// Outsiders cannot tell a hidden message from a missing one
	_, err := svc.GetMessageByID(message.ID, outsider.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = svc.GetMessageByID(9999, citizen.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDeleteMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)
	outsider := createUser(t, db, "Citizen Two", models.RoleCitizen)
	message := createMessage(t, db, citizen.ID, rep.ID, "Road repairs",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	deleted, err := svc.DeleteMessage(message.ID, outsider.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeleteMessage(message.ID, rep.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Already gone
	deleted, err = svc.DeleteMessage(message.ID, citizen.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMarkAllMessagesAsRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		createMessage(t, db, citizen.ID, rep.ID, "Subject", base.Add(time.Duration(i)*time.Minute))
	}

	affected, err := svc.MarkAllMessagesAsRead(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	count, err := svc.GetUnreadMessageCount(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Second pass has nothing left to change
	affected, err = svc.MarkAllMessagesAsRead(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestReplyToMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)
	original := createMessage(t, db, citizen.ID, rep.ID, "Road repairs",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	// Replies flow back to citizens even though direct sends cannot
	reply, err := svc.ReplyToMessage(original.ID, rep.ID, "We are on it.")
	require.NoError(t, err)
	assert.Equal(t, "Re: Road repairs", reply.Subject)
	assert.Equal(t, citizen.ID, reply.RecipientID)
	assert.False(t, reply.Read)

	// Replying to a reply does not stack prefixes
	counter, err := svc.ReplyToMessage(reply.ID, citizen.ID, "Thank you.")
	require.NoError(t, err)
	assert.Equal(t, "Re: Road repairs", counter.Subject)
	assert.Equal(t, rep.ID, counter.RecipientID)
}

func TestReplyToMessageAuthorization(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMessageService(db, testConfig())

	citizen := createUser(t, db, "Citizen One", models.RoleCitizen)
	rep := createUser(t, db, "Rep One", models.RoleRepresentative)
	outsider := createUser(t, db, "Citizen Two", models.RoleCitizen)
	original := createMessage(t, db, citizen.ID, rep.ID, "Road repairs",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	_, err := svc.ReplyToMessage(original.ID, outsider.ID, "Let me in.")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.ReplyToMessage(9999, citizen.ID, "Hello?")
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = svc.ReplyToMessage(original.ID, rep.ID, "   ")
	assert.ErrorIs(t, err, ErrMissingFields)
}
