package calls

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RajatShinde3/callmate-ai-backend/internal/httpapi"
	"github.com/gin-gonic/gin"
)

// Handlers serves the /api/calls CRUD surface.
// Keep these thin: parse/validate input, call the store, return JSON.
type Handlers struct {
	Store Store
}

type createRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Duration    int    `json:"duration"`
	Transcript  string `json:"transcript"`
}

type updateRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	Duration    *int    `json:"duration"`
	Status      *Status `json:"status"`
	Transcript  *string `json:"transcript"`
	AISummary   *string `json:"aiSummary"`

	// ID is accepted but ignored; the stored id never changes.
	ID *string `json:"id"`
}

// List handles GET /api/calls?page=&limit=&status=.
// Unparsable page/limit values fall back to defaults rather than erroring.
func (h Handlers) List(c *gin.Context) {
	q := ListQuery{
		Page:   intQuery(c, "page", DefaultPage),
		Limit:  intQuery(c, "limit", DefaultLimit),
		Status: Status(c.Query("status")),
	}

	items, pagination := h.Store.List(c.Request.Context(), q)
	c.JSON(http.StatusOK, gin.H{
		"calls":      items,
		"pagination": pagination,
	})
}

// Get handles GET /api/calls/:id.
func (h Handlers) Get(c *gin.Context) {
	id := c.Param("id")
	call, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		notFound(c, id)
		return
	}
	c.JSON(http.StatusOK, call)
}

// Create handles POST /api/calls.
func (h Handlers) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBind(&req); err != nil {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body")
		return
	}

	call, err := h.Store.Create(c.Request.Context(), CreateInput{
		PhoneNumber:     req.PhoneNumber,
		DurationSeconds: req.Duration,
		Transcript:      req.Transcript,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "phoneNumber is required")
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, httpapi.CodeInternal, "could not create call")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Call created successfully",
		"call":    call,
	})
}

// Update handles PUT /api/calls/:id with shallow-merge semantics.
func (h Handlers) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateRequest
	if err := c.ShouldBind(&req); err != nil {
		httpapi.Error(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body")
		return
	}

	call, err := h.Store.Update(c.Request.Context(), id, UpdateInput{
		PhoneNumber:     req.PhoneNumber,
		DurationSeconds: req.Duration,
		Status:          req.Status,
		Transcript:      req.Transcript,
		AISummary:       req.AISummary,
	})
	if err != nil {
		notFound(c, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Call updated successfully",
		"call":    call,
	})
}

// Delete handles DELETE /api/calls/:id.
func (h Handlers) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		notFound(c, id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Call deleted successfully",
	})
}

func notFound(c *gin.Context, id string) {
	httpapi.Error(c, http.StatusNotFound, httpapi.CodeCallNotFound,
		fmt.Sprintf("Call with ID %s does not exist", id))
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
