package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database reachability and which optional
// integrations have credentials. Only a failing database degrades the status.
type HealthHandler struct {
	DB        Pinger
	WhatsApp  bool
	Mail      bool
	Version   string
	StartedAt time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db Pinger, whatsAppConfigured, mailConfigured bool, version string) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		WhatsApp:  whatsAppConfigured,
		Mail:      mailConfigured,
		Version:   version,
		StartedAt: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Version: h.Version,
		Uptime:  time.Since(h.StartedAt).Round(time.Second).String(),
		Dependencies: map[string]string{
			"whatsapp": configured(h.WhatsApp),
			"mail":     configured(h.Mail),
		},
	}

	code := http.StatusOK
	switch db := h.pingDB(r.Context()); {
	case db == nil:
		resp.Dependencies["database"] = "healthy"
	case h.DB == nil:
		resp.Dependencies["database"] = "not configured"
	default:
		resp.Dependencies["database"] = "unhealthy: " + db.Error()
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	if h.DB == nil {
		return errNoDatabase
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.DB.PingContext(ctx)
}

var errNoDatabase = errors.New("no database")

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
