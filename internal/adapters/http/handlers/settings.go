package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/domain"
	"github.com/quotevault/quotevault/internal/notify"
)

// SettingsHandler exposes user preferences over HTTP and keeps the
// daily alert schedule in line with them.
type SettingsHandler struct {
	settings  *app.SettingsStore
	quotes    *app.QuoteStore
	scheduler *notify.Scheduler
}

// NewSettingsHandler creates a settings handler. Scheduler may be nil
// when notification scheduling is disabled.
func NewSettingsHandler(settings *app.SettingsStore, quotes *app.QuoteStore, scheduler *notify.Scheduler) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		quotes:    quotes,
		scheduler: scheduler,
	}
}

// SettingsResponse is the HTTP shape of the preferences, with the
// derived color scheme and font scale included.
type SettingsResponse struct {
	Theme                string             `json:"theme"`
	FontSize             string             `json:"fontSize"`
	NotificationsEnabled bool               `json:"notificationsEnabled"`
	NotificationTime     string             `json:"notificationTime"`
	Colors               domain.ColorScheme `json:"colors"`
	FontScale            domain.FontScale   `json:"fontScale"`
}

func toSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:                string(s.Theme),
		FontSize:             string(s.FontSize),
		NotificationsEnabled: s.NotificationsEnabled,
		NotificationTime:     s.NotificationTime,
		Colors:               s.Theme.Colors(),
		FontScale:            s.FontSize.Scale(),
	}
}

// updateSettingsRequest is the body of PATCH /api/v1/settings.
// Absent fields are left unchanged.
type updateSettingsRequest struct {
	Theme                *string `json:"theme" validate:"omitempty,oneof=light dark rose ocean"`
	FontSize             *string `json:"fontSize" validate:"omitempty,oneof=small medium large"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	NotificationTime     *string `json:"notificationTime" validate:"omitempty,hhmm"`
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toSettingsResponse(h.settings.Settings()))
}

// Update handles PATCH /api/v1/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if !bindAuthRequest(c, &req) {
		return
	}

	if req.Theme != nil {
		h.settings.SetTheme(domain.Theme(*req.Theme))
	}

	if req.FontSize != nil {
		h.settings.SetFontSize(domain.FontSize(*req.FontSize))
	}

	if req.NotificationsEnabled != nil {
		h.settings.SetNotificationsEnabled(*req.NotificationsEnabled)
	}

	if req.NotificationTime != nil {
		h.settings.SetNotificationTime(*req.NotificationTime)
	}

	if req.NotificationsEnabled != nil || req.NotificationTime != nil {
		h.reschedule(c)
	}

	c.JSON(http.StatusOK, toSettingsResponse(h.settings.Settings()))
}

// reschedule replaces or cancels the daily alert to match the current
// notification settings.
func (h *SettingsHandler) reschedule(c *gin.Context) {
	if h.scheduler == nil {
		return
	}

	current := h.settings.Settings()
	if !current.NotificationsEnabled {
		h.scheduler.Cancel()
		return
	}

	quote := h.quotes.QuoteOfDay()
	if quote == nil {
		h.quotes.FetchQuoteOfDay(c.Request.Context())
		quote = h.quotes.QuoteOfDay()
	}

	hour, minute := notify.ParseTime(current.NotificationTime)
	h.scheduler.Schedule(hour, minute, quote.Text, quote.Author)
}

// RegisterSettingsRoutes registers the settings routes.
func (h *SettingsHandler) RegisterSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	settings.GET("", h.Get)
	settings.PATCH("", h.Update)
}
