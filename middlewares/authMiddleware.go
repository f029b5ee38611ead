package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/bizbooks_backend/utils"
)

// AuthMiddleware validates the Bearer token and hangs the claims on the
// request context so the models layer can read the tenancy scope.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		validate, err := utils.JwtValidate(token)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		// The client may ask for a specific business scope. The header
		// value is untrusted here: the models layer verifies membership
		// on every scoped query (MemberBusinessId), and ledger reads
		// additionally degrade to owner scope when denied.
		businessId := c.Request.Header.Get("X-Business-Id")
		if businessId == "" {
			businessId = claim.BusinessId
		}

		ctx := c.Request.Context()
		ctx = utils.SetUserIdInContext(ctx, claim.ID)
		ctx = utils.SetBusinessIdInContext(ctx, businessId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
