package api

import (
	"errors"
	"net/http"

	"github.com/celerix-dev/clientes/internal/engine"
	"github.com/celerix-dev/clientes/pkg/query"
	"github.com/celerix-dev/clientes/pkg/schema"
	"github.com/gin-gonic/gin"
)

// Resource is the collection name used in routes and in the Content-Range header.
const Resource = "clientes"

type Handler struct {
	Store engine.Store
}

// Register mounts the clientes routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/ping", h.Ping)
	r.GET("/"+Resource, h.List)
	r.POST("/"+Resource, h.Create)
	r.GET("/"+Resource+"/:id", h.Get)
	r.PUT("/"+Resource+"/:id", h.Update)
	r.DELETE("/"+Resource+"/:id", h.Delete)
}

// CORS allows any origin and exposes Content-Range so browser grids can paginate.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Range, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", query.ContentRangeHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// NoRoute answers unknown paths with a JSON 404.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "pong"})
}

func (h *Handler) List(c *gin.Context) {
	params, err := query.ParseParams(c.Query("filter"), c.Query("sort"), c.Query("range"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.Store.List()
	if err != nil {
		writeError(c, err)
		return
	}

	page, err := query.Apply(records, params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header(query.ContentRangeHeader, query.ContentRange(Resource, page))
	c.JSON(http.StatusOK, page.Items)
}

func (h *Handler) Create(c *gin.Context) {
	var input schema.ClienteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	first, last := input.Names()
	created, err := h.Store.Create(first, last)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) Get(c *gin.Context) {
	record, err := h.Store.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) Update(c *gin.Context) {
	var input schema.ClienteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	first, last := input.Names()
	updated, err := h.Store.Update(c.Param("id"), first, last)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, query.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
