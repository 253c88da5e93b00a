package handler

import (
	"github.com/blogsmith/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session keys. user_id is set on login; session_id scopes guest-owned
// blogs; last_blogs_file points at the most recent generated batch.
const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionGuestIDKey  = "session_id"
	sessionBatchKey    = "last_blogs_file"
)

// currentUserID returns the logged-in user's id, or 0 for guests.
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionUserIDKey).(uint); ok {
		return id
	}
	return 0
}

// currentOwner resolves the caller's owner context, minting a guest
// session id on first contact.
func currentOwner(c *gin.Context) service.Owner {
	if userID := currentUserID(c); userID != 0 {
		return service.Owner{UserID: userID}
	}

	session := sessions.Default(c)
	guestID, ok := session.Get(sessionGuestIDKey).(string)
	if !ok || guestID == "" {
		guestID = uuid.NewString()
		session.Set(sessionGuestIDKey, guestID)
		session.Save()
	}
	return service.Owner{SessionID: guestID}
}

func sessionBatchPath(c *gin.Context) string {
	session := sessions.Default(c)
	if path, ok := session.Get(sessionBatchKey).(string); ok {
		return path
	}
	return ""
}

func setSessionBatchPath(c *gin.Context, path string) error {
	session := sessions.Default(c)
	session.Set(sessionBatchKey, path)
	return session.Save()
}
