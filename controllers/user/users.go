package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zakariabn/orbit-tools-server-site/middleware"
	"github.com/zakariabn/orbit-tools-server-site/models"
	"github.com/zakariabn/orbit-tools-server-site/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SetRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GET /users
func GetAllUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.Find(c.Request.Context(), store.Users, bson.M{}, 0)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// GET /user/:email
func GetUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		user, err := s.FindOne(c.Request.Context(), store.Users, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// PUT /user/:email
//
// Upserts the profile document and refreshes the auth cookie. The role field
// is immutable through this route: whatever the client sends is discarded and
// any role already on record is kept.
func UpsertUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var profile bson.M
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
			return
		}
		delete(profile, "role")
		profile["email"] = email

		role := models.RoleUser
		existing, err := s.FindOne(c.Request.Context(), store.Users, bson.M{"email": email})
		if err == nil {
			if r := models.DocRole(existing); r != "" {
				role = r
			}
		}

		result, err := s.UpdateOne(c.Request.Context(), store.Users,
			bson.M{"email": email}, bson.M{"$set": profile}, true)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to save user"})
			return
		}

		token, err := middleware.IssueToken(email, role)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to issue token"})
			return
		}
		middleware.SetAuthCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"validUser": true, "result": result, "token": token})
	}
}

// PUT /admin-user/role
//
// Explicit role assignment, restricted to admins. Success is reported only
// when the write modified an existing document; an upsert that creates the
// user reports no modification and therefore comes back as a failure. Known
// quirk carried over from the legacy behavior.
func SetUserRole(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := s.FindOne(c.Request.Context(), store.Users,
			bson.M{"email": middleware.CallerEmail(c)})
		if err != nil || !models.IsAdminDoc(caller) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden access"})
			return
		}

		var req SetRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Role == "" {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "email and role are required"})
			return
		}

		result, err := s.UpdateOne(c.Request.Context(), store.Users,
			bson.M{"email": req.Email}, bson.M{"$set": bson.M{"role": req.Role}}, true)
		if err != nil || result.ModifiedCount == 0 {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to update role"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
	}
}

// PUT /update-user?email=
//
// Merges the body fields into the user document. The response distinguishes
// an applied update, a no-op write, and a miss.
func UpdateUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "email is required"})
			return
		}

		var fields bson.M
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
			return
		}
		delete(fields, "role")

		result, err := s.UpdateOne(c.Request.Context(), store.Users,
			bson.M{"email": email}, bson.M{"$set": fields}, false)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User update failed"})
			return
		}

		switch {
		case result.ModifiedCount > 0:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated"})
		case result.MatchedCount > 0:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Nothing to update"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User update failed"})
		}
	}
}

// GET /admin-user and GET /user/admin
//
// The identity comes from the verified token claims, never from the request.
// A missing user answers {admin:false}; only a store failure surfaces a 500.
func IsAdmin(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.FindOne(c.Request.Context(), store.Users,
			bson.M{"email": middleware.CallerEmail(c)})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusOK, gin.H{"admin": false})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check role"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": models.IsAdminDoc(user)})
	}
}

// GET /user/logout
func Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
