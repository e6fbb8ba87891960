package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookie is the cookie carrying the signed token. The value is prefixed
// with the "Bearer " scheme tag.
const AuthCookie = "token"

const tokenTTL = 24 * time.Hour

// IssueToken generates a signed JWT for a user.
func IssueToken(email, role string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// SetAuthCookie stores the token in an http-only cookie. SameSite is Lax so
// top-level navigations from the storefront still carry the session.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookie, "Bearer "+token, int(tokenTTL.Seconds()), "/", "", false, true)
}

// ClearAuthCookie removes the auth cookie. Always succeeds.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookie, "", -1, "/", "", false, true)
}

// RequireToken gates protected routes. A missing cookie is 401; a malformed,
// badly signed, or expired token is 403. On success the verified email and
// role are attached to the request context.
func RequireToken(c *gin.Context) {
	cookie, err := c.Cookie(AuthCookie)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized access"})
		return
	}

	tokenString, found := strings.CutPrefix(cookie, "Bearer ")
	if !found {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden access"})
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden access"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden access"})
		return
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	c.Set("email", email)
	c.Set("role", role)

	c.Next()
}

// CallerEmail returns the verified email attached by RequireToken.
func CallerEmail(c *gin.Context) string {
	email, _ := c.Get("email")
	s, _ := email.(string)
	return s
}
