package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentAccountID pulls the authenticated account out of the gin
// context. The JWT middleware guarantees the key exists on protected
// routes; a parse failure means the route was wired without it.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
