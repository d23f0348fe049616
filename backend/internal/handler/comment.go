package handler

import (
	"net/http"

	"github.com/forumhub/forum-api/backend/internal/service"
	"github.com/forumhub/forum-api/shared/api"
	"github.com/forumhub/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	p, err := payload(w, r, "threadId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	added, err := h.uc.AddComment.Execute(r.Context(), p)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.AddCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteComment.Execute(r.Context(), service.DeleteCommentPayload{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		Owner:     owner(r),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, nil)
}
