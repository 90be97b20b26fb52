package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDContextKey возвращает ключ контекста, под которым UUIDValidator сохраняет разобранный параметр.
func UUIDContextKey(paramName string) string {
	return "uuid_param:" + paramName
}

// UUIDValidator проверяет, что параметр с указанным именем является валидным UUID,
// и кладёт разобранное значение в контекст.
// Использование: sessions.GET("/:id", UUIDValidator("id"), handler.GetSession)
func UUIDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " обязателен",
			})
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " должен быть валидным UUID",
			})
			return
		}

		c.Set(UUIDContextKey(paramName), id)
		c.Next()
	}
}
