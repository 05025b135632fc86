package core

import (
	"fmt"
	"strconv"
	"strings"
)

type TaskStatus string

const (
	TaskStatusQueued     TaskStatus = "queued"
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Terminal reports whether the server will not move the task any further.
// The poll loop does not act on this; callers may.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed:
		return true
	}
	return false
}

// UploadTask is the client-held view of a background import task. TaskID is
// assigned once by the server at submission; the remaining fields are
// refreshed on every poll tick.
type UploadTask struct {
	TaskID    string     `json:"task_id"`
	Status    TaskStatus `json:"status"`
	Processed int        `json:"processed"`
	Total     int        `json:"total"`
	Percent   float64    `json:"percent"`
	Message   string     `json:"message,omitempty"`
}

// Page is one page of a server-paginated collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Limit      int `json:"limit"`
}

type Product struct {
	ID          int64    `json:"id"`
	SKU         string   `json:"sku"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Active      bool     `json:"active"`
}

// ProductInput is the create/update payload. Price serializes as an
// explicit null when unset so the server never sees 0 for an emptied
// field; Active is omitted entirely when unset so the server default
// applies.
type ProductInput struct {
	SKU         string   `json:"sku"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active,omitempty"`
}

type Webhook struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	EventType string `json:"event_type"`
	Active    bool   `json:"active"`
}

type WebhookInput struct {
	URL       string `json:"url"`
	EventType string `json:"event_type"`
	Active    *bool  `json:"active,omitempty"`
}

// ListQuery carries the product list filters plus pagination. Zero-valued
// string filters and a nil Active are not sent at all, which is how the
// server distinguishes "show all" from active=false.
type ListQuery struct {
	SKU         string
	Name        string
	Description string
	Active      *bool
	Page        int
	Limit       int
}

// Values renders the query as wire parameters, omitting unset filters.
func (q ListQuery) Values() map[string]string {
	values := map[string]string{}
	if v := strings.TrimSpace(q.SKU); v != "" {
		values["sku"] = v
	}
	if v := strings.TrimSpace(q.Name); v != "" {
		values["name"] = v
	}
	if v := strings.TrimSpace(q.Description); v != "" {
		values["description"] = v
	}
	if q.Active != nil {
		values["active"] = strconv.FormatBool(*q.Active)
	}
	if q.Page > 0 {
		values["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		values["limit"] = strconv.Itoa(q.Limit)
	}
	return values
}

type ModalMode string

const (
	ModalModeCreate ModalMode = "create"
	ModalModeEdit   ModalMode = "edit"
)

// ModalSession is the bounded interval between opening and closing the
// create/edit dialog. A new session is minted on every open.
type ModalSession struct {
	SessionID string
	Mode      ModalMode
	TargetID  string
}

type PageTurn string

const (
	PageTurnPrev PageTurn = "prev"
	PageTurnNext PageTurn = "next"
)

func (t PageTurn) Validate() error {
	switch t {
	case PageTurnPrev, PageTurnNext:
		return nil
	}
	return fmt.Errorf("core: unknown page turn %q", string(t))
}

type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertWarning AlertSeverity = "warning"
	AlertError   AlertSeverity = "error"
)
