package controllers

import (
	"net/http"
	"strings"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an owner and issues a JWT.
// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var owner models.Owner
	err := a.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&owner).Error
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(req.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := middleware.IssueOwnerToken(owner.ID, owner.Email)
	if err != nil {
		logrus.WithError(err).Error("token issue failed")
		utils.JSONError(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"owner": gin.H{
			"id":       owner.ID,
			"fullName": owner.FullName,
			"email":    owner.Email,
		},
	})
}
