package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webfolio/portfolio-api/internal/accounts"
	"github.com/webfolio/portfolio-api/pkg/logger"
)

// RegisterRequest carries the registration payload; all fields are required
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves registration and login
type AuthHandler struct {
	svc *accounts.Service
}

func NewAuthHandler(svc *accounts.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register wires the auth routes into the given group
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.RegisterAccount)
	rg.POST("/login", h.Login)
}

// RegisterAccount creates a new account with the user role
func (h *AuthHandler) RegisterAccount(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := h.svc.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, accounts.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exist!!!"})
			return
		}
		logger.Errorf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully!"})
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password answer identically so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		logger.Errorf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User successfully logged in!", "accessToken": token})
}
