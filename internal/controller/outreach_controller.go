// internal/controller/outreach_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/influenceos/influenceos-backend/internal/errors"
	"github.com/influenceos/influenceos-backend/internal/model"
	"github.com/influenceos/influenceos-backend/internal/service"
)

type OutreachController struct {
	OutreachService *service.OutreachService
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var campaignNotFound *appErrors.ErrCampaignNotFound
	var influencerNotFound *appErrors.ErrInfluencerNotFound
	if errors.As(err, &campaignNotFound) || errors.As(err, &influencerNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (c *OutreachController) AnalyzeInfluencer(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	profile, err := c.OutreachService.AnalyzeInfluencer(r.Context(), username)
	if err != nil {
		var notFound *appErrors.ErrInfluencerNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, profile)
}

func (c *OutreachController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string            `json:"name"`
		Brand       model.BrandConfig `json:"brand"`
		Influencers []string          `json:"influencers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Name == "" || body.Brand.Name == "" {
		http.Error(w, "name and brand.name are required", http.StatusBadRequest)
		return
	}

	summary, err := c.OutreachService.CreateCampaign(r.Context(), body.Brand, body.Influencers, body.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, summary)
}

func (c *OutreachController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"data": c.OutreachService.ListCampaignSummaries(),
	})
}

func (c *OutreachController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := c.OutreachService.GetCampaignSummary(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, summary)
}

func (c *OutreachController) SendCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		DryRun bool `json:"dry_run"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
	}

	result, err := c.OutreachService.SendCampaignMessages(r.Context(), id, body.DryRun)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result)
}

func (c *OutreachController) CheckFollowUps(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := c.OutreachService.CheckAndSendFollowUps(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result)
}

func (c *OutreachController) CampaignPerformance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := c.OutreachService.AnalyzeCampaignPerformance(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, report)
}

func (c *OutreachController) RecordResponse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Username string `json:"username"`
		Positive bool   `json:"positive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	if err := c.OutreachService.RecordResponse(id, body.Username, body.Positive); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"campaign_id": id,
		"username":    body.Username,
		"positive":    body.Positive,
	})
}
