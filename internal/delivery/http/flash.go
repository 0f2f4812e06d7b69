package http

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FlashCookieName is the one-shot cookie carrying status messages across
// a redirect.
const FlashCookieName = "gigbook_flash"

// flashTTL bounds how long an undelivered flash cookie stays valid.
const flashTTL = 5 * time.Minute

// FlashKind classifies flash message presentation.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// FlashMessage is a one-shot user-facing status message.
type FlashMessage struct {
	Kind FlashKind `json:"kind"`
	Text string    `json:"text"`
}

type flashClaims struct {
	jwt.RegisteredClaims
	Messages []FlashMessage `json:"msgs"`
}

// FlashCodec signs and verifies the flash cookie with HS256 so rendered
// pages never trust client-supplied message text.
type FlashCodec struct {
	secret []byte
}

func NewFlashCodec(secret string) *FlashCodec {
	return &FlashCodec{secret: []byte(secret)}
}

// Flash stores messages in the flash cookie for the next page render.
func (c *FlashCodec) Flash(w http.ResponseWriter, messages ...FlashMessage) {
	if len(messages) == 0 {
		return
	}
	now := time.Now()
	claims := flashClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
		},
		Messages: messages,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending flash messages, if any, and expires the
// cookie. Tampered or expired cookies are dropped silently.
func (c *FlashCodec) ReadAndClear(w http.ResponseWriter, r *http.Request) []FlashMessage {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	claims := &flashClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil
	}
	return claims.Messages
}

// SuccessFlash builds a success message.
func SuccessFlash(text string) FlashMessage {
	return FlashMessage{Kind: FlashSuccess, Text: text}
}

// ErrorFlash builds an error message.
func ErrorFlash(text string) FlashMessage {
	return FlashMessage{Kind: FlashError, Text: text}
}
