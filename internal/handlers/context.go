package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall/config"
	"rollcall/internal/helpers"
	"rollcall/internal/links"
	"rollcall/internal/store"
)

func storeFrom(c *gin.Context) (*store.Store, bool) {
	v, exists := c.Get("store")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not available.")
		return nil, false
	}
	return v.(*store.Store), true
}

func linksFrom(c *gin.Context) (*links.Builder, bool) {
	v, exists := c.Get("links")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Link builder not available.")
		return nil, false
	}
	return v.(*links.Builder), true
}

func configFrom(c *gin.Context) (*config.Config, bool) {
	v, exists := c.Get("config")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Configuration not available.")
		return nil, false
	}
	return v.(*config.Config), true
}

func htmlError(c *gin.Context, statusCode int, message string) {
	c.HTML(statusCode, "error.html", gin.H{"Message": message})
}
