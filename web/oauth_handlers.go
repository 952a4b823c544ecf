package web

import (
	"net/http"

	"github.com/alex-monroe/fantasy-pulse-sub000/controller"
	"github.com/unrolled/render"
)

func oauthLinkHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := ctrl.OAuthStart()
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

// oauthRedirectHandler completes the provider round trip. The returned state
// is what the UI posts back to /api/integrations to finish connecting the
// account.
func oauthRedirectHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		code := params.Get("code")
		state := params.Get("state")

		if err := ctrl.OAuthExchange(r.Context(), state, code); err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"state": state})
	}
}
