package handler

import (
	"net/http"

	"github.com/forumhub/forum-api/shared/api"
	"github.com/forumhub/forum-api/shared/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	p, err := payload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	delete(p, "owner")
	user, err := h.uc.RegisterUser.Execute(r.Context(), p)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.RegisterUserResponse{AddedUser: user})
}
