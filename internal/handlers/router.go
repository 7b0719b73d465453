package handlers

import "github.com/gin-gonic/gin"

// Dispatch routes a page request by its query parameters, the contract every
// printed link relies on:
//
//	no event, no mode        -> home (create form + event list)
//	event set, mode == form  -> sign-up form for that event
//	mode == admin            -> admin view (key checked inside)
//	anything else            -> home
//
// There is no explicit not-found page; an unrecognized combination falls
// back to home so stale or mangled links still land somewhere useful.
func Dispatch(c *gin.Context) {
	eventID := c.Query("event")
	mode := c.Query("mode")

	switch {
	case eventID != "" && mode == "form":
		ShowForm(c)
	case mode == "admin":
		ShowAdmin(c)
	default:
		ShowHome(c)
	}
}
