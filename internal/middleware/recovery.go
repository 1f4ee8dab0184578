package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery atrapa cualquier pánico no manejado y responde el cuerpo
// de error global {"error": {"message": ...}} con 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": fmt.Sprint(recovered)},
		})
	})
}
