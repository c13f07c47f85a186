package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/handler/shared"
)

func writeError(c *gin.Context, err error) {
	shared.WriteError(c, err)
}

func bindJSON(c *gin.Context, out any) bool {
	return shared.BindJSON(c, out)
}
