package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"julianmorley.ca/shop/storefront/pkg/global"
	"julianmorley.ca/shop/storefront/pkg/mongo"
	"julianmorley.ca/shop/storefront/pkg/redis"
)

// CurrentUser resolves the session cookie to a user document and attaches
// both to the request context. Requests without a valid session are sent back
// to the shop index.
func CurrentUser(store *mongo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("session")
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		session, err := redis.GetSession(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		userID, err := bson.ObjectIDFromHex(session.UserID)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		user, err := store.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("session", session)
		c.Next()
	}
}

// CSRFGuard checks unsafe requests for the token bound to the session. The
// token may come from the X-CSRF-Token header or a csrf_token form field.
func CSRFGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)

		token := c.GetHeader("X-CSRF-Token")
		if token == "" {
			token = c.PostForm("csrf_token")
		}

		if token == "" || token != session.CSRFToken {
			c.JSON(http.StatusForbidden, global.ErrorResponse("Invalid CSRF token", []global.ValidationError{
				{Field: "csrf_token", Message: "Missing or mismatched CSRF token", Code: "csrf_mismatch"},
			}))
			c.Abort()
			return
		}

		c.Next()
	}
}
