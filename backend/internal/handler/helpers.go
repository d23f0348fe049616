package handler

import (
	"net/http"

	"github.com/forumhub/forum-api/shared/domain"
	"github.com/forumhub/forum-api/shared/middleware"
	"github.com/forumhub/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// payload decodes the JSON body and overlays the path parameters and the
// authenticated owner, so a body can never override either.
func payload(w http.ResponseWriter, r *http.Request, params ...string) (domain.Payload, error) {
	p, err := utils.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	for _, name := range params {
		p[name] = chi.URLParam(r, name)
	}
	if user := middleware.GetUserFromContext(r); user != nil {
		p["owner"] = user.Id
	}
	return p, nil
}

// owner is only called behind NeedAuth.
func owner(r *http.Request) domain.UserId {
	if user := middleware.GetUserFromContext(r); user != nil {
		return user.Id
	}
	return ""
}
