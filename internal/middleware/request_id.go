package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-discover/internal/logging"
)

// RequestIDHeader é o header propagado entre cliente e servidor
const RequestIDHeader = "X-Request-ID"

// RequestID reaproveita o X-Request-ID recebido ou gera um novo.
// O id fica no contexto do gin (usado pelos logs) e volta no header da resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(logging.RequestIDField, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
