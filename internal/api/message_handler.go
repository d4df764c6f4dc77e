package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chatvault/backend/internal/interfaces"
	"chatvault/backend/internal/service"
)

// MessageHandler handles HTTP requests for the messages of a chat.
type MessageHandler struct {
	service interfaces.MessageService
}

func NewMessageHandler(svc interfaces.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// AppendMessage godoc
// @Summary      Append a message
// @Description  Stores the message with a server timestamp and marks the chat as recently active.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                        true  "Chat ID"
// @Param        request  body      service.AppendMessageRequest  true  "Message"
// @Success      201      {object}  model.Message
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [post]
func (h *MessageHandler) AppendMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.AppendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	msg, err := h.service.AppendMessage(r.Context(), userID, chi.URLParam(r, "chatID"), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, msg)
}

// ReplaceMessages godoc
// @Summary      Replace a chat's transcript
// @Description  Deletes every message of the chat and stores the supplied ones in order. Appends made concurrently may be lost.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                          true  "Chat ID"
// @Param        request  body      service.ReplaceMessagesRequest  true  "Full transcript"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [put]
func (h *MessageHandler) ReplaceMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.ReplaceMessagesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if _, err := h.service.ReplaceMessages(r.Context(), userID, chi.URLParam(r, "chatID"), &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, statusOK)
}
