package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogsmith/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req, "invalid registration payload") {
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if username == "" || email == "" || password == "" {
		respondError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	var existing db.User
	if err := a.db.Where("username = ?", username).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "failed to check username")
		return
	}

	if err := a.db.Where("email = ?", email).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "failed to check email")
		return
	}

	user := db.User{Username: username, Email: email}
	if err := user.SetPassword(password); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := a.db.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "account created successfully", "username": user.Username})
}

// Login authenticates by email and password and stores the user in the
// session.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "invalid login payload") {
		return
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var user db.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !user.CheckPassword(password) {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "welcome back, " + user.Username, "username": user.Username})
}

// Logout clears the caller's session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "you have been logged out"})
}
