package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/logger"
	"shortlink/internal/validation"
)

const metricReferrerRedirects = "referrer_redirects"

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errURLRequired       = map[string]string{"error": "url is required"}
	errURLsRequired      = map[string]string{"error": "urls is required"}
	errURLNotFound       = map[string]string{"error": "url not found"}
	errAnalyticsNotFound = map[string]string{"error": "analytics not found"}
	errCreateFailed      = map[string]string{"error": "failed to create short url"}
	errCreateBatchFailed = map[string]string{"error": "failed to create short urls"}
	errGetFailed         = map[string]string{"error": "failed to get url"}
	errDeactivateFailed  = map[string]string{"error": "failed to deactivate url"}
	errAnalyticsFailed   = map[string]string{"error": "failed to get analytics"}
	errInvalidURL        = map[string]string{"error": "invalid url format"}
	errUnsafeURL         = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong        = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP         = map[string]string{"error": "private ip addresses not allowed"}
	errBatchTooLarge     = map[string]string{"error": "batch size exceeds maximum"}
	respHealthOK         = map[string]string{"status": "ok"}
)

type Handler struct {
	urlService URLService
	requests   echo.Validator
	logger     *slog.Logger
	recorder   BusinessRecorder
}

func New(urlService URLService, logger *slog.Logger, recorder BusinessRecorder) *Handler {
	return &Handler{
		urlService: urlService,
		requests:   NewRequestValidator(),
		logger:     logger,
		recorder:   recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.Validator = h.requests

	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/urls", h.CreateURL)
	api.POST("/urls/batch", h.CreateURLBatch)
	api.GET("/urls/:code", h.GetURL)
	api.DELETE("/urls/:code", h.DeactivateURL)
	api.GET("/urls/:code/exists", h.Exists)
	api.GET("/urls/:code/clicks", h.ClickCount)
	api.GET("/analytics/summary", h.Summary)
	api.GET("/analytics/:code", h.Analytics)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateURL(c echo.Context) error {
	log := h.log(c)

	var req domain.CreateURLRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := h.requests.Validate(&req); err != nil {
		return h.requestError(c, err)
	}

	m, err := h.urlService.CreateShortURL(c.Request().Context(), req.URL, req.ExpirationDays)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidURL) {
			return h.handleValidationError(c, err)
		}
		log.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, h.toResponse(m))
}

func (h *Handler) CreateURLBatch(c echo.Context) error {
	log := h.log(c)

	var req domain.CreateURLBatchRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := h.requests.Validate(&req); err != nil {
		return h.requestError(c, err)
	}

	mappings, err := h.urlService.CreateShortURLBatch(c.Request().Context(), req.URLs, req.ExpirationDays)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidURL) {
			return h.handleValidationError(c, err)
		}
		log.Error("failed to create short urls", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateBatchFailed)
	}

	resp := domain.CreateURLBatchResponse{URLs: make([]domain.CreateURLResponse, 0, len(mappings))}
	for _, m := range mappings {
		resp.URLs = append(resp.URLs, h.toResponse(m))
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetURL returns an accessible mapping without counting a click.
func (h *Handler) GetURL(c echo.Context) error {
	code := c.Param("code")

	m, err := h.urlService.Lookup(c.Request().Context(), code)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errURLNotFound)
	}
	if err != nil {
		h.log(c).Error("failed to get url", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.JSON(http.StatusOK, h.toResponse(m))
}

func (h *Handler) DeactivateURL(c echo.Context) error {
	code := c.Param("code")

	ok, err := h.urlService.Deactivate(c.Request().Context(), code)
	if err != nil {
		h.log(c).Error("failed to deactivate url", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeactivateFailed)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, errURLNotFound)
	}

	return c.JSON(http.StatusOK, domain.DeactivateResponse{ShortCode: code, Deactivated: true})
}

func (h *Handler) Exists(c echo.Context) error {
	code := c.Param("code")

	exists, err := h.urlService.Exists(c.Request().Context(), code)
	if err != nil {
		h.log(c).Error("failed to check url", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.JSON(http.StatusOK, domain.ExistsResponse{ShortCode: code, Exists: exists})
}

func (h *Handler) ClickCount(c echo.Context) error {
	code := c.Param("code")

	count, err := h.urlService.ClickCount(c.Request().Context(), code)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errAnalyticsNotFound)
	}
	if err != nil {
		h.log(c).Error("failed to get click count", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
	}

	return c.JSON(http.StatusOK, domain.ClickCountResponse{ShortCode: code, ClickCount: count})
}

func (h *Handler) Analytics(c echo.Context) error {
	code := c.Param("code")

	a, err := h.urlService.GetAnalytics(c.Request().Context(), code)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errAnalyticsNotFound)
	}
	if err != nil {
		h.log(c).Error("failed to get analytics", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Summary(c echo.Context) error {
	s, err := h.urlService.GetSummary(c.Request().Context())
	if err != nil {
		h.log(c).Error("failed to get summary", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
	}
	return c.JSON(http.StatusOK, s)
}

// Redirect answers 302 for accessible codes and 404 for everything else,
// including deactivated and expired ones.
func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	req := c.Request()

	originalURL, err := h.urlService.Resolve(req.Context(), code, domain.ClientInfo{
		IPAddress: c.RealIP(),
		UserAgent: req.UserAgent(),
		Referer:   req.Referer(),
	})
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errURLNotFound)
	}
	if err != nil {
		h.log(c).Error("failed to resolve url", slog.String("short_code", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	h.recordReferrer(extractDomain(req.Referer()))
	return c.Redirect(http.StatusFound, originalURL)
}

func (h *Handler) recordReferrer(referrer string) {
	labels, err := json.Marshal(map[string]string{"referrer": referrer})
	if err != nil {
		return
	}
	h.recorder.RecordBusiness(time.Now(), metricReferrerRedirects, 1, labels)
}

func (h *Handler) toResponse(m *domain.Mapping) domain.CreateURLResponse {
	return domain.CreateURLResponse{
		ShortCode:   m.ShortCode,
		ShortURL:    h.urlService.ShortURL(m.ShortCode),
		OriginalURL: m.OriginalURL,
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
		IsActive:    m.IsActive,
	}
}

func (h *Handler) log(c echo.Context) *slog.Logger {
	return logger.FromContext(c.Request().Context(), h.logger)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func (h *Handler) requestError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"errors": fieldErrors(err),
	})
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var batchErr *validation.BatchError
	if errors.As(err, &batchErr) {
		return c.JSON(http.StatusBadRequest, formatBatchErrors(batchErr))
	}

	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	case errors.Is(err, validation.ErrBatchTooLarge):
		return c.JSON(http.StatusBadRequest, errBatchTooLarge)
	case errors.Is(err, validation.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, errURLsRequired)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func formatBatchErrors(err *validation.BatchError) map[string]any {
	items := make([]map[string]any, len(err.Items))
	for i, item := range err.Items {
		items[i] = map[string]any{
			"index": item.Index,
			"error": item.Err.Error(),
		}
	}
	return map[string]any{"errors": items}
}
