package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alex-monroe/fantasy-pulse-sub000/controller"
	"github.com/alex-monroe/fantasy-pulse-sub000/db"
	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func teamsHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetTeams(r.Context(), sessions.CurrentUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"teams": teams})
	}
}

func matchupsHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetTeams(r.Context(), sessions.CurrentUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, ctrl.ProcessMatchups(teams))
	}
}

func listIntegrationsHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrations, err := ctrl.GetIntegrations(r.Context(), sessions.CurrentUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}

		results := make([]map[string]any, 0, len(integrations))
		for _, i := range integrations {
			// Tokens stay server-side.
			results = append(results, map[string]any{
				"id":       i.ID,
				"provider": i.Provider,
				"created":  i.Created,
			})
		}
		render.JSON(w, http.StatusOK, map[string]any{"integrations": results})
	}
}

// connectRequest is the JSON body for connecting a new integration. Which
// fields matter depends on the provider.
type connectRequest struct {
	Provider  string `json:"provider"`
	Username  string `json:"username"`
	State     string `json:"state"`
	TeamURL   string `json:"teamUrl"`
	LeagueURL string `json:"leagueUrl"`
	TeamName  string `json:"teamName"`
}

func connectHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req connectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		provider, err := model.ParseProvider(req.Provider)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		i, err := ctrl.Connect(r.Context(), sessions.CurrentUser(r), provider, controller.ConnectRequest{
			Username:  req.Username,
			State:     req.State,
			TeamURL:   req.TeamURL,
			LeagueURL: req.LeagueURL,
			TeamName:  req.TeamName,
		})
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusCreated, map[string]any{
			"id":       i.ID,
			"provider": i.Provider,
		})
	}
}

func removeIntegrationHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := chi.URLParam(r, "integrationID")
		if err := ctrl.RemoveIntegration(r.Context(), sessions.CurrentUser(r), integrationID); err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

func leaguesHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := chi.URLParam(r, "integrationID")
		leagues, err := ctrl.GetLeagues(r.Context(), sessions.CurrentUser(r), integrationID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		results := make([]map[string]any, 0, len(leagues))
		for _, l := range leagues {
			results = append(results, map[string]any{
				"externalId":  l.ExternalID,
				"name":        l.Name,
				"season":      l.Season,
				"rosterCount": l.RosterCount,
				"status":      l.Status,
			})
		}
		render.JSON(w, http.StatusOK, map[string]any{"leagues": results})
	}
}

func syncHandler(ctrl controller.C, sessions Sessions, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := chi.URLParam(r, "integrationID")
		if err := ctrl.SyncData(r.Context(), sessions.CurrentUser(r), integrationID); err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "synced"})
	}
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, controller.ErrNotLoggedIn):
		status = http.StatusUnauthorized
	case errors.Is(err, db.ErrIntegrationNotFound):
		status = http.StatusNotFound
	}
	render.JSON(w, status, map[string]string{"error": err.Error()})
}
