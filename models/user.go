package models

import "go.mongodb.org/mongo-driver/bson"

// Role values stored on the user document.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DocRole reads the role field off a raw user document, empty when unset.
func DocRole(doc bson.M) string {
	role, _ := doc["role"].(string)
	return role
}

// IsAdminDoc reports whether a raw user document carries the admin role.
func IsAdminDoc(doc bson.M) bool {
	return DocRole(doc) == RoleAdmin
}
