package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	httpapi "github.com/home-central/backend/internal/api/http"
	"github.com/home-central/backend/internal/auth/middleware"
	"github.com/home-central/backend/internal/projects/domain"
	"github.com/home-central/backend/internal/supabase"
	"github.com/home-central/backend/internal/validation"
)

func (h *Handler) create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httpapi.MalformedBody(c)
		return
	}

	var req domain.ProjectCreate
	if err := validation.Decode(body, &req); err != nil {
		httpapi.MalformedBody(c)
		return
	}
	if fields := validation.Struct(&req); len(fields) > 0 {
		httpapi.ValidationFailed(c, fields)
		return
	}
	req.ApplyDefaults()

	userID := c.GetString(middleware.ContextUserID)
	project, err := h.store(c).Insert(c.Request.Context(), req.Record(userID))
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.store(c).List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.store(c).GetByID(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		httpapi.MalformedBody(c)
		return
	}

	// Presence map first: only fields the client actually sent are applied,
	// and an explicit null counts as sent.
	var present map[string]json.RawMessage
	if err := validation.Decode(body, &present); err != nil {
		httpapi.MalformedBody(c)
		return
	}

	var req domain.ProjectUpdate
	if err := validation.Decode(body, &req); err != nil {
		httpapi.MalformedBody(c)
		return
	}
	if fields := validation.Struct(&req); len(fields) > 0 {
		httpapi.ValidationFailed(c, fields)
		return
	}

	changes := map[string]json.RawMessage{}
	for _, field := range domain.UpdatableFields {
		if raw, ok := present[field]; ok {
			changes[field] = raw
		}
	}

	store := h.store(c)

	// Existence check first so a missing row is a clean 404. The check and
	// the write are two round trips; no transaction spans them.
	existing, err := store.GetByID(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	if len(changes) == 0 {
		c.JSON(http.StatusOK, existing)
		return
	}

	project, err := store.Update(c.Request.Context(), id, changes)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	store := h.store(c)
	if _, err := store.GetByID(c.Request.Context(), id); err != nil {
		httpapi.Error(c, err)
		return
	}

	if err := store.Delete(c.Request.Context(), id); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// projectID validates the path identifier. A non-UUID value cannot name an
// existing row, so it resolves to 404 without a store round trip.
func projectID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httpapi.Error(c, supabase.NotFound("Project not found"))
		return "", false
	}
	return id, true
}
