package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash categories, rendered as the notice's style on the next page.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// flashCookieName carries one notice across the redirect after a POST.
const flashCookieName = "catalog_flash"

// Flash is a one-shot user-visible notice: set on a mutating request,
// displayed and cleared by the next page render.
type Flash struct {
	Category string
	Message  string
}

// setFlash stores a notice in a short-lived cookie. The value is
// base64-encoded so messages can contain any characters a cookie cannot.
func setFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending notice, if any. Undecodable cookies
// are dropped silently — a stale or tampered cookie is not worth an error page.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
