package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/utils"
	"github.com/MKhiriev/katla-sections/models"
)

const (
	sectionsPath      = "/api/sections"
	sectionPath       = "/api/sections/{id}"
	sectionStatusPath = "/api/sections/{id}/status/{deletedStatus}"
	versionPath       = "/api/version/"
)

type httpSectionsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSectionsAdapter constructs an HTTP/REST implementation of
// [SectionsAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPSectionsAdapter(cfg config.Adapter, logger *logger.Logger) (SectionsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpSectionsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSectionsAdapter) List(ctx context.Context) ([]models.HiveSectionListItem, error) {
	var items []models.HiveSectionListItem

	resp, err := h.request(ctx).
		SetResult(&items).
		Get(sectionsPath)
	if err != nil {
		return nil, fmt.Errorf("list sections request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpSectionsAdapter) Get(ctx context.Context, id int64) (models.HiveSection, error) {
	var section models.HiveSection

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&section).
		Get(sectionPath)
	if err != nil {
		return models.HiveSection{}, fmt.Errorf("get section request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HiveSection{}, err
	}

	return section, nil
}

// Create implements [SectionsAdapter]. The response must carry a Location
// header pointing at the new section.
func (h *httpSectionsAdapter) Create(ctx context.Context, req models.UpdateHiveSectionRequest) (models.HiveSection, error) {
	var created models.HiveSection

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post(sectionsPath)
	if err != nil {
		return models.HiveSection{}, fmt.Errorf("create section request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HiveSection{}, err
	}

	if resp.Header().Get("Location") == "" {
		return created, ErrNoLocation
	}

	h.logger.Debug().
		Str("func", "*httpSectionsAdapter.Create").
		Str("location", resp.Header().Get("Location")).
		Msg("section created")

	return created, nil
}

func (h *httpSectionsAdapter) Update(ctx context.Context, id int64, req models.UpdateHiveSectionRequest) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(sectionPath)
	if err != nil {
		return fmt.Errorf("update section request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSectionsAdapter) SetStatus(ctx context.Context, id int64, deleted bool) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"id":            strconv.FormatInt(id, 10),
			"deletedStatus": strconv.FormatBool(deleted),
		}).
		Put(sectionStatusPath)
	if err != nil {
		return fmt.Errorf("set section status request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSectionsAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(sectionPath)
	if err != nil {
		return fmt.Errorf("delete section request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSectionsAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpSectionsAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
