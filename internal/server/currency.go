package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/facture/internal/currency"
)

// ListCurrencies serves the display-currency catalog, optionally filtered by
// a case-insensitive code/name query.
func (s *Server) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": currency.Search(c.Query("q"))})
}
