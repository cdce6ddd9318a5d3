package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/utils"
	"github.com/MKhiriev/katla-sections/models"
)

const sectionsLocationFormat = "/api/sections/%d"

func (h *Handler) getHiveSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.services.HiveSectionService.GetHiveSections(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.getHiveSections")
		return
	}

	if sections == nil {
		sections = []models.HiveSectionListItem{}
	}

	utils.WriteJSON(w, sections, http.StatusOK)
}

func (h *Handler) getHiveSection(w http.ResponseWriter, r *http.Request) {
	id, err := parseSectionID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getHiveSection")
		return
	}

	section, err := h.services.HiveSectionService.GetHiveSection(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getHiveSection")
		return
	}

	utils.WriteJSON(w, section, http.StatusOK)
}

func (h *Handler) setHiveSectionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseSectionID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.setHiveSectionStatus")
		return
	}
	deleted, err := parseDeletedStatus(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.setHiveSectionStatus")
		return
	}

	if err = h.services.HiveSectionService.SetStatus(r.Context(), id, deleted); err != nil {
		h.writeError(w, r, err, "*Handler.setHiveSectionStatus")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createHiveSection(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeHiveSectionRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createHiveSection")
		return
	}

	created, err := h.services.HiveSectionService.CreateHiveSection(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createHiveSection")
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.createHiveSection").Int64("id", created.ID).Msg("hive section created")

	w.Header().Set("Location", fmt.Sprintf(sectionsLocationFormat, created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateHiveSection(w http.ResponseWriter, r *http.Request) {
	id, err := parseSectionID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateHiveSection")
		return
	}

	req, err := h.decodeHiveSectionRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateHiveSection")
		return
	}

	if _, err = h.services.HiveSectionService.UpdateHiveSection(r.Context(), id, req); err != nil {
		h.writeError(w, r, err, "*Handler.updateHiveSection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteHiveSection(w http.ResponseWriter, r *http.Request) {
	id, err := parseSectionID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteHiveSection")
		return
	}

	if err = h.services.HiveSectionService.DeleteHiveSection(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteHiveSection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeHiveSectionRequest decodes and validates the request body.
func (h *Handler) decodeHiveSectionRequest(r *http.Request) (models.UpdateHiveSectionRequest, error) {
	var req models.UpdateHiveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.UpdateHiveSectionRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		return models.UpdateHiveSectionRequest{}, err
	}

	return req, nil
}
