package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall/internal/helpers"
)

// QRImage serves the stored code image for an event, rendering it on demand
// when it has not been persisted yet.
func QRImage(c *gin.Context) {
	st, ok := storeFrom(c)
	if !ok {
		return
	}
	lb, ok := linksFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	ev, err := st.ReadMeta(eventID)
	if err != nil {
		slog.Warn("reading event metadata for qr image", "event", eventID, "error", err)
	}
	if ev.IsZero() {
		helpers.RespondWithError(c, http.StatusNotFound, "No code for this event.")
		return
	}

	if !st.HasQR(eventID) {
		png, err := lb.RenderCode(lb.SignupURL(eventID))
		if err != nil {
			slog.Error("rendering qr code", "event", eventID, "error", err)
			helpers.RespondWithError(c, http.StatusInternalServerError, "The code could not be rendered.")
			return
		}
		if err := st.WriteQR(eventID, png); err != nil {
			slog.Error("storing qr code", "event", eventID, "error", err)
			helpers.RespondWithError(c, http.StatusInternalServerError, "The code could not be stored.")
			return
		}
	}

	c.File(st.QRPath(eventID))
}

// Health is a plain liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
