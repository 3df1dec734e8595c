package middleware

import (
	"Atelier/internal/pkg/consts"
	"strings"

	"github.com/gin-gonic/gin"
)

var mobileKeywords = []string{"mobile", "android", "iphone", "ipad"}

// DeviceMiddleware 通过 User-Agent 关键词粗分移动端与桌面端
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := strings.ToLower(c.GetHeader("User-Agent"))

		device := consts.DeviceDesktop
		for _, keyword := range mobileKeywords {
			if strings.Contains(ua, keyword) {
				device = consts.DeviceMobile
				break
			}
		}

		c.Set(consts.DeviceKey, device)
		c.Next()
	}
}
