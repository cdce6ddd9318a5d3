package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	paramSectionID     = "id"
	paramDeletedStatus = "deletedStatus"
)

// parseSectionID returns the positive integer id of the request path.
func parseSectionID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, paramSectionID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s %q", ErrRouteNotMatched, paramSectionID, raw)
	}

	return id, nil
}

// parseDeletedStatus accepts "true" and "false" in any letter case.
func parseDeletedStatus(r *http.Request) (bool, error) {
	raw := strings.TrimSpace(chi.URLParam(r, paramDeletedStatus))

	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	}

	return false, fmt.Errorf("%w: %s %q", ErrRouteNotMatched, paramDeletedStatus, raw)
}
