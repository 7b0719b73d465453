package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"rollcall/internal/export"
	"rollcall/internal/helpers"
	"rollcall/internal/metric"
	"rollcall/internal/models"
)

type rosterListing struct {
	Event     models.Event
	SignupURL string
	Rows      []models.Attendee
	RowsError bool
	HasQR     bool
}

// adminKeyOK compares the caller-supplied key against the shared secret.
// Exact, case-sensitive match; the key may arrive as a query parameter (the
// admin link) or a form field (the admin view's buttons).
func adminKeyOK(c *gin.Context) bool {
	cfg, ok := configFrom(c)
	if !ok {
		return false
	}
	key := c.Query("key")
	if key == "" {
		key = c.PostForm("key")
	}
	return key == cfg.AdminKey
}

// denyAdmin responds uniformly on a bad key. Deliberately identical whether
// the event exists or not, so the response leaks nothing.
func denyAdmin(c *gin.Context) {
	c.HTML(http.StatusForbidden, "denied.html", nil)
}

// ShowAdmin renders the roster overview: for every event (or just the one
// named by the event parameter) its metadata, links, code, attendee count,
// the full table, and the export/reset/regenerate actions.
func ShowAdmin(c *gin.Context) {
	if !adminKeyOK(c) {
		denyAdmin(c)
		return
	}
	st, ok := storeFrom(c)
	if !ok {
		return
	}
	lb, ok := linksFrom(c)
	if !ok {
		return
	}

	var events []models.Event
	if eventID := c.Query("event"); eventID != "" {
		ev, err := st.ReadMeta(eventID)
		if err != nil {
			slog.Warn("reading event metadata for admin view", "event", eventID, "error", err)
		}
		events = []models.Event{ev}
	} else {
		all, err := st.ListEvents()
		if err != nil {
			slog.Error("listing events for admin view", "error", err)
			htmlError(c, http.StatusInternalServerError, "Could not load the event list.")
			return
		}
		events = all
	}

	listings := make([]rosterListing, 0, len(events))
	for _, ev := range events {
		rows, err := st.LoadAttendees(ev.ID)
		if err != nil {
			slog.Error("loading attendees for admin view", "event", ev.ID, "error", err)
		}
		listings = append(listings, rosterListing{
			Event:     ev,
			SignupURL: lb.SignupURL(ev.ID),
			Rows:      rows,
			RowsError: err != nil,
			HasQR:     st.HasQR(ev.ID),
		})
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Listings": listings,
		"Key":      c.Query("key"),
	})
}

// ExportCSV streams the roster as a delimited table. Unlike the public form
// path, a corrupt table fails here; an export missing rows would look
// complete and be trusted.
func ExportCSV(c *gin.Context) {
	if !adminKeyOK(c) {
		helpers.RespondWithError(c, http.StatusForbidden, "Access denied.")
		return
	}
	st, ok := storeFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	rows, err := st.LoadAttendees(eventID)
	if err != nil {
		slog.Error("loading attendees for export", "event", eventID, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "The attendee table could not be read.")
		return
	}
	data, err := export.CSV(rows)
	if err != nil {
		slog.Error("encoding csv export", "event", eventID, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "The export could not be produced.")
		return
	}

	metric.Exports.WithLabelValues("csv").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "attendees_"+eventID+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportXLSX streams the roster as a single-sheet spreadsheet.
func ExportXLSX(c *gin.Context) {
	if !adminKeyOK(c) {
		helpers.RespondWithError(c, http.StatusForbidden, "Access denied.")
		return
	}
	st, ok := storeFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	rows, err := st.LoadAttendees(eventID)
	if err != nil {
		slog.Error("loading attendees for export", "event", eventID, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "The attendee table could not be read.")
		return
	}
	data, err := export.XLSX(rows)
	if err != nil {
		slog.Error("encoding xlsx export", "event", eventID, "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "The export could not be produced.")
		return
	}

	metric.Exports.WithLabelValues("xlsx").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "attendees_"+eventID+".xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ResetRoster truncates the event's table to zero rows. Irreversible; a
// single explicit button press in the admin view triggers it.
func ResetRoster(c *gin.Context) {
	if !adminKeyOK(c) {
		denyAdmin(c)
		return
	}
	st, ok := storeFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if err := st.ResetAttendees(eventID); err != nil {
		slog.Error("resetting roster", "event", eventID, "error", err)
		htmlError(c, http.StatusInternalServerError, "The roster could not be reset.")
		return
	}

	metric.Resets.Inc()
	slog.Info("roster reset", "event", eventID)
	redirectToAdmin(c)
}

// RegenerateQR re-derives the signup URL from current configuration and
// overwrites the stored code image. Used after BASE_URL changes while
// events already exist.
func RegenerateQR(c *gin.Context) {
	if !adminKeyOK(c) {
		denyAdmin(c)
		return
	}
	st, ok := storeFrom(c)
	if !ok {
		return
	}
	lb, ok := linksFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	signupURL := lb.SignupURL(eventID)
	png, err := lb.RenderCode(signupURL)
	if err != nil {
		slog.Error("rendering qr code", "event", eventID, "error", err)
		htmlError(c, http.StatusInternalServerError, "The sign-up code could not be rendered.")
		return
	}
	if err := st.WriteQR(eventID, png); err != nil {
		slog.Error("storing qr code", "event", eventID, "error", err)
		htmlError(c, http.StatusInternalServerError, "The sign-up code could not be stored.")
		return
	}

	slog.Info("qr code regenerated", "event", eventID, "url", signupURL)
	redirectToAdmin(c)
}

func redirectToAdmin(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		key = c.PostForm("key")
	}
	c.Redirect(http.StatusSeeOther, "/?mode=admin&key="+url.QueryEscape(key))
}
