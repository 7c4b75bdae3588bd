package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kimdaehee-sian/msa-back-User-Service/internal/logs"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("/search", h.SearchUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
}

// CreateUser POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	route := c.FullPath()

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := bindingErrorMessage(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		logs.LogJSON("WARN", "Invalid create request", map[string]interface{}{
			"error": msg,
			"route": route,
		})
		return
	}

	resp, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SearchUsers GET /users/search?nickname=
func (h *Handler) SearchUsers(c *gin.Context) {
	route := c.FullPath()

	nickname, ok := c.GetQuery("nickname")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'nickname' is required"})
		logs.LogJSON("WARN", "Search parameter 'nickname' required", map[string]interface{}{
			"route": route,
		})
		return
	}

	responses, err := h.service.SearchUsersByNickname(c.Request.Context(), nickname)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// GetUser GET /users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateUser PATCH /users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	route := c.FullPath()

	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := bindingErrorMessage(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		logs.LogJSON("WARN", "Invalid update request", map[string]interface{}{
			"error": msg,
			"route": route,
			"id":    id,
		})
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) userID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid user id: %s", raw)})
		logs.LogJSON("WARN", "Invalid user id", map[string]interface{}{
			"route": c.FullPath(),
			"id":    raw,
		})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	route := c.FullPath()

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		logs.LogJSON("WARN", "User not found", map[string]interface{}{
			"route": route,
			"id":    notFound.ID,
		})
		return
	}

	var duplicate *DuplicateNicknameError
	if errors.As(err, &duplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": duplicate.Error()})
		logs.LogJSON("WARN", "Duplicate nickname", map[string]interface{}{
			"route":    route,
			"nickname": duplicate.Nickname,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	logs.LogJSON("ERROR", "Unexpected error", map[string]interface{}{
		"error": err.Error(),
		"route": route,
	})
}

// bindingErrorMessage names the offending field when the binding failure
// came from validation, and stays generic for malformed JSON.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("field '%s' is required", fe.Field())
		case "min":
			return fmt.Sprintf("field '%s' must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("field '%s' must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("field '%s' is invalid", fe.Field())
	}
	return "invalid request body"
}
