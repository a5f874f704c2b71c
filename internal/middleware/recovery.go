package middleware

import (
	"fmt"
	"log"
	"net/http"

	"hospital-management-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panicking handler into a 500 envelope. The panic value is
// sent to the client only when exposeErrors is set.
func Recovery(exposeErrors bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Unhandled error: %v", recovered)

		message := "Internal server error"
		if exposeErrors {
			if err, ok := recovered.(error); ok {
				message = err.Error()
			} else {
				message = fmt.Sprint(recovered)
			}
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, message)
		c.Abort()
	})
}
