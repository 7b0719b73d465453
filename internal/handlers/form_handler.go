package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rollcall/internal/metric"
	"rollcall/internal/models"
)

// fallbackEventType keeps the form usable when a stale code points at an
// event whose metadata is gone.
const fallbackEventType = "Feuerlöschtraining"

// ShowForm renders the sign-up form for one event. An unknown id still gets
// a working form (soft miss), so a code printed for a cleared deployment
// keeps collecting rows instead of erroring at the check-in desk.
func ShowForm(c *gin.Context) {
	st, ok := storeFrom(c)
	if !ok {
		return
	}

	eventID := c.Query("event")
	ev, err := st.ReadMeta(eventID)
	if err != nil {
		slog.Warn("reading event metadata for form", "event", eventID, "error", err)
	}

	c.HTML(http.StatusOK, "form.html", formData(ev, "", "", models.ConsentYes, "", false))
}

// SubmitAttendee validates one submission and appends it to the event's
// table. The form stays open afterwards; at a shared device the next person
// signs in on the same page.
func SubmitAttendee(c *gin.Context) {
	st, ok := storeFrom(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	name := c.PostForm("name")
	company := c.PostForm("company")
	consent := c.PostForm("photo_consent")

	ev, err := st.ReadMeta(eventID)
	if err != nil {
		slog.Warn("reading event metadata for submission", "event", eventID, "error", err)
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(company) == "" || !models.ValidConsent(consent) {
		metric.SignupsRejected.Inc()
		c.HTML(http.StatusBadRequest, "form.html",
			formData(ev, name, company, consent, "Please fill in all required fields.", false))
		return
	}

	attendee := models.NewAttendee(eventType(ev), name, company, consent, time.Now())
	if err := st.AppendAttendee(eventID, attendee); err != nil {
		// A lost sign-up is the worst outcome here, so this path is loud.
		slog.Error("appending attendee", "event", eventID, "error", err)
		c.HTML(http.StatusInternalServerError, "form.html",
			formData(ev, name, company, consent, "Your sign-up could not be saved. Please try again.", false))
		return
	}

	metric.SignupsAccepted.Inc()
	slog.Info("attendee signed up", "event", eventID, "company", attendee.Company)

	c.HTML(http.StatusOK, "form.html", formData(ev, "", "", models.ConsentYes, "", true))
}

func eventType(ev models.Event) string {
	if t := strings.TrimSpace(ev.EventType); t != "" {
		return t
	}
	return fallbackEventType
}

func formData(ev models.Event, name, company, consent, errMsg string, success bool) gin.H {
	return gin.H{
		"Event":     ev,
		"EventType": eventType(ev),
		"Name":      name,
		"Company":   company,
		"Consent":   consent,
		"Error":     errMsg,
		"Success":   success,
	}
}
