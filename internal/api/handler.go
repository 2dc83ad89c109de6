package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"commerce-service/internal/service"
	"commerce-service/internal/store"
	"commerce-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	userService  *service.UserService
	itemService  *service.ItemService
	orderService *service.OrderService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	orderService *service.OrderService,
) *Handler {
	return &Handler{
		userService:  userService,
		itemService:  itemService,
		orderService: orderService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/hello", h.hello)
	router.GET("/health", h.healthCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/users", h.createUser)
		api.GET("/users/:id", h.getUser)

		api.GET("/items", h.listItems)
		api.POST("/items", h.createItem)
		api.GET("/items/:id", h.getItem)
		api.PUT("/items/:id", h.updateItem)
		api.DELETE("/items/:id", h.deleteItem)

		api.POST("/orders", h.createOrder)
		api.GET("/orders/:id", h.getOrder)
	}
}

// hello handles the liveness greeting
func (h *Handler) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello World! Backend is running",
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// createUser handles user creation
func (h *Handler) createUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// getUser handles get user by ID
func (h *Handler) getUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// listItems handles listing all items
func (h *Handler) listItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// createItem handles item creation
func (h *Handler) createItem(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// getItem handles get item by ID
func (h *Handler) getItem(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// updateItem handles partial item update
func (h *Handler) updateItem(c *gin.Context) {
	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// deleteItem handles item deletion
func (h *Handler) deleteItem(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// createOrder handles order creation
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// getOrder handles get order by ID
func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// writeError maps a service error to its HTTP response: missing entities are
// 404 with a message naming the entity, anything else is a server error.
func writeError(c *gin.Context, err error) {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": nf.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
