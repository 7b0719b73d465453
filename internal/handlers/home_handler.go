package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rollcall/internal/metric"
	"rollcall/internal/models"
)

type eventListing struct {
	Event     models.Event
	SignupURL string
	AdminURL  string
	HasQR     bool
}

// ShowHome renders the create-event form plus the list of existing events
// with their links and codes.
func ShowHome(c *gin.Context) {
	st, ok := storeFrom(c)
	if !ok {
		return
	}
	lb, ok := linksFrom(c)
	if !ok {
		return
	}
	cfg, ok := configFrom(c)
	if !ok {
		return
	}

	events, err := st.ListEvents()
	if err != nil {
		slog.Error("listing events", "error", err)
		htmlError(c, http.StatusInternalServerError, "Could not load the event list.")
		return
	}

	listings := make([]eventListing, 0, len(events))
	for _, ev := range events {
		listings = append(listings, eventListing{
			Event:     ev,
			SignupURL: lb.SignupURL(ev.ID),
			AdminURL:  lb.AdminURL(ev.ID),
			HasQR:     st.HasQR(ev.ID),
		})
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Events":     listings,
		"EventTypes": models.EventTypes,
		"HasLogo":    cfg.LogoPath != "",
	})
}

// CreateEvent persists a new event, renders its code, and shows the links.
func CreateEvent(c *gin.Context) {
	st, ok := storeFrom(c)
	if !ok {
		return
	}
	lb, ok := linksFrom(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	date := strings.TrimSpace(c.PostForm("date"))
	location := strings.TrimSpace(c.PostForm("location"))
	eventType := strings.TrimSpace(c.PostForm("event_type"))

	if !models.ValidEventType(eventType) {
		htmlError(c, http.StatusBadRequest, "Unknown event type.")
		return
	}

	ev, err := st.Create(title, date, location, eventType)
	if err != nil {
		slog.Error("creating event", "error", err)
		htmlError(c, http.StatusInternalServerError, "The event could not be saved.")
		return
	}

	signupURL := lb.SignupURL(ev.ID)
	png, err := lb.RenderCode(signupURL)
	if err != nil {
		slog.Error("rendering qr code", "event", ev.ID, "error", err)
		htmlError(c, http.StatusInternalServerError, "The sign-up code could not be rendered.")
		return
	}
	if err := st.WriteQR(ev.ID, png); err != nil {
		slog.Error("storing qr code", "event", ev.ID, "error", err)
		htmlError(c, http.StatusInternalServerError, "The sign-up code could not be stored.")
		return
	}

	metric.EventsCreated.Inc()
	slog.Info("event created", "event", ev.ID, "title", ev.Title, "type", ev.EventType)

	c.HTML(http.StatusOK, "created.html", gin.H{
		"Event":     ev,
		"SignupURL": signupURL,
		"AdminURL":  lb.AdminURL(ev.ID),
	})
}
