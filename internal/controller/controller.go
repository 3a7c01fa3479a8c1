package controller

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

// currentUserID resolves the acting user. Anonymous requests operate
// on the shared demo profile (id 0).
func currentUserID(ctx *gin.Context) uint {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
