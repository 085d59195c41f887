package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-splendor/utils"
)

// AuthMiddleware 解析 Bearer 令牌，把玩家身份塞进上下文。
// 动作接口的 playerID 一律来自令牌，不信任请求体。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未授权"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ParseAccessToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "令牌无效"})
			c.Abort()
			return
		}

		c.Set("playerID", claims.PlayerID)
		c.Next()
	}
}
