package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/domain"
)

func TestChatHandler_SessionsAndMessages(t *testing.T) {
	t.Parallel()

	handler := NewChatHandler(newTestService(t), testLogger())

	rr := httptest.NewRecorder()
	handler.CreateChatSession(rr, newAuthedRequest(t, http.MethodPost, "/api/chats", "tenant-1",
		CreateChatSessionRequest{Title: "Goroutines"}, nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var session ChatSessionResponse
	decodeBody(t, rr, &session)
	require.NotEmpty(t, session.ID)
	assert.Empty(t, session.Messages)

	rr = httptest.NewRecorder()
	handler.AddMessage(rr, newAuthedRequest(t, http.MethodPost,
		"/api/chats/"+session.ID+"/messages", "tenant-1",
		AddMessageRequest{Role: "user", Content: "what is a goroutine?"},
		map[string]string{"sessionID": session.ID}))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.AddMessage(rr, newAuthedRequest(t, http.MethodPost,
		"/api/chats/"+session.ID+"/messages", "tenant-1",
		AddMessageRequest{Role: "assistant", Content: "a lightweight thread"},
		map[string]string{"sessionID": session.ID}))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.GetChatMessages(rr, newAuthedRequest(t, http.MethodGet,
		"/api/chats/"+session.ID+"/messages", "tenant-1", nil,
		map[string]string{"sessionID": session.ID}))
	require.Equal(t, http.StatusOK, rr.Code)

	var messages []domain.Message
	decodeBody(t, rr, &messages)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageRoleUser, messages[0].Role)
	assert.Equal(t, domain.MessageRoleAssistant, messages[1].Role)
}

func TestChatHandler_AbsentSession(t *testing.T) {
	t.Parallel()

	handler := NewChatHandler(newTestService(t), testLogger())

	// Message appends are strict about absence.
	rr := httptest.NewRecorder()
	handler.AddMessage(rr, newAuthedRequest(t, http.MethodPost,
		"/api/chats/ghost/messages", "tenant-1",
		AddMessageRequest{Role: "user", Content: "hello?"},
		map[string]string{"sessionID": "ghost"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Session deletion is idempotent.
	rr = httptest.NewRecorder()
	handler.DeleteChatSession(rr, newAuthedRequest(t, http.MethodDelete,
		"/api/chats/ghost", "tenant-1", nil,
		map[string]string{"sessionID": "ghost"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestChatHandler_RejectsInvalidRole(t *testing.T) {
	t.Parallel()

	handler := NewChatHandler(newTestService(t), testLogger())

	rr := httptest.NewRecorder()
	handler.CreateChatSession(rr, newAuthedRequest(t, http.MethodPost, "/api/chats", "tenant-1",
		CreateChatSessionRequest{Title: "Goroutines"}, nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var session ChatSessionResponse
	decodeBody(t, rr, &session)

	rr = httptest.NewRecorder()
	handler.AddMessage(rr, newAuthedRequest(t, http.MethodPost,
		"/api/chats/"+session.ID+"/messages", "tenant-1",
		AddMessageRequest{Role: "system", Content: "you are a pirate"},
		map[string]string{"sessionID": session.ID}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
