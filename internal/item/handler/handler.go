package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoppinglist/shopping-list/internal/item"
	"github.com/shoppinglist/shopping-list/internal/item/service"
	"github.com/shoppinglist/shopping-list/pkg/logger"
	"github.com/shoppinglist/shopping-list/pkg/middleware"
)

type itemHandler struct {
	svc service.Service
}

// RegisterItemRoutes mounts the /items endpoints on r.
func RegisterItemRoutes(r *gin.Engine, svc service.Service) {
	h := &itemHandler{svc: svc}
	r.GET("/items", h.list)
	r.POST("/items", h.create)
	r.PUT("/items/:id", h.update)
	r.DELETE("/items/:id", h.delete)
	// the whole collection is never deletable
	r.DELETE("/items", func(c *gin.Context) { respondError(c, http.StatusBadRequest) })
}

// NotFound is the catch-all JSON 404 used for unmatched routes.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound)
}

// respondError writes the fixed {"message": ...} body for status.
func respondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, gin.H{"message": http.StatusText(status)})
}

func internalError(c *gin.Context, op string, err error) {
	logger.Errorw("items request failed", "request_id", middleware.RequestID(c), "op", op, "err", err)
	respondError(c, http.StatusInternalServerError)
}

func (h *itemHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, "list", err)
		return
	}
	if items == nil {
		items = []*item.Item{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *itemHandler) create(c *gin.Context) {
	body, ok := readObject(c)
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}
	name, ok := stringField(body, "name")
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}
	it, err := h.svc.Create(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, item.ErrInvalidName) {
			respondError(c, http.StatusBadRequest)
			return
		}
		internalError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *itemHandler) update(c *gin.Context) {
	id := c.Param("id")
	body, ok := readObject(c)
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}
	if _, has := body["name"]; !has {
		respondError(c, http.StatusBadRequest)
		return
	}
	if !idMatches(body["id"], id) {
		respondError(c, http.StatusBadRequest)
		return
	}
	name, ok := stringField(body, "name")
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}

	it, err := h.svc.Update(c.Request.Context(), id, name)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, it)
	case errors.Is(err, item.ErrInvalidID), errors.Is(err, item.ErrInvalidName):
		respondError(c, http.StatusBadRequest)
	case errors.Is(err, item.ErrNotFound):
		respondError(c, http.StatusNotFound)
	default:
		internalError(c, "update", err)
	}
}

func (h *itemHandler) delete(c *gin.Context) {
	id := c.Param("id")
	n, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, item.ErrInvalidID) {
			respondError(c, http.StatusNotFound)
			return
		}
		internalError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deletedCount": n})
}

// readObject reads the request body as a non-empty JSON object.
func readObject(c *gin.Context) (map[string]json.RawMessage, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || len(body) == 0 {
		return nil, false
	}
	return body, true
}

func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// idMatches compares the body id with the path id the way a loose equality
// would: strings compare verbatim, numbers by value. A missing id never matches.
func idMatches(raw json.RawMessage, pathID string) bool {
	if len(raw) == 0 {
		return false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return false
	}
	switch id := v.(type) {
	case string:
		return id == pathID
	case json.Number:
		if id.String() == pathID {
			return true
		}
		a, errA := strconv.ParseFloat(id.String(), 64)
		b, errB := strconv.ParseFloat(pathID, 64)
		return errA == nil && errB == nil && a == b
	default:
		return false
	}
}
