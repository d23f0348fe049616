package handler

import (
	"net/http"

	"github.com/forumhub/forum-api/backend/internal/service"
	"github.com/forumhub/forum-api/shared/api"
	"github.com/forumhub/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	p, err := payload(w, r, "threadId", "commentId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	added, err := h.uc.AddReply.Execute(r.Context(), p)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.AddReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteReply.Execute(r.Context(), service.DeleteReplyPayload{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		ReplyId:   chi.URLParam(r, "replyId"),
		Owner:     owner(r),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nil)
}
