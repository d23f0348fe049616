package handler

import (
	"net/http"

	"github.com/forumhub/forum-api/shared/api"
	"github.com/forumhub/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	p, err := payload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	added, err := h.uc.AddThread.Execute(r.Context(), p)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.AddThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.uc.GetThreadDetail.Execute(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
