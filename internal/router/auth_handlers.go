package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"julianmorley.ca/shop/storefront/pkg/global"
	"julianmorley.ca/shop/storefront/pkg/models"
	"julianmorley.ca/shop/storefront/pkg/redis"
)

const sessionCookieMaxAge = 24 * 60 * 60

type SignupRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (api *API) PostSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Cart:     models.Cart{Items: []models.CartItem{}},
	}

	created, err := api.Store.CreateUser(c.Request.Context(), user)
	if err != nil {
		if mongodrv.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Email already registered", []global.ValidationError{
				{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create user", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(created))
}

func (api *API) PostLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, err := api.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid credentials", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch user", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid credentials", nil))
		return
	}

	session, err := redis.CreateSession(c.Request.Context(), user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create session", nil))
		return
	}

	c.SetCookie("session", session.Token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"csrf_token": session.CSRFToken,
	}))
}

func (api *API) PostLogout(c *gin.Context) {
	if token, err := c.Cookie("session"); err == nil && token != "" {
		if err := redis.DeleteSession(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete session", nil))
			return
		}
	}

	c.SetCookie("session", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
