package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/signup/web/src/templates/partials"
)

const flashSessionName = "flash-session"

// Flash keys rendered as toasts by GetFlashData.
const (
	FlashKeySuccess = "success"
	FlashKeyError   = "error"
)

// Flash is one message stored under Key until the next request reads it.
type Flash struct {
	Key     string
	Message string
}

// SetFlashes adds every flash to the session and saves it once, so the
// response carries a single flash-session cookie.
func SetFlashes(c echo.Context, flashes ...Flash) {
	if len(flashes) == 0 {
		return
	}
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	for _, f := range flashes {
		sess.AddFlash(f.Message, f.Key)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("failed to save flash session: %v", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	SetFlashes(c, Flash{Key: FlashKeySuccess, Message: message})
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	SetFlashes(c, Flash{Key: FlashKeyError, Message: message})
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) partials.FlashData {
	var data partials.FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() reads and clears; the session must be saved to persist the clearing.
	successFlashes := sess.Flashes(FlashKeySuccess)
	errorFlashes := sess.Flashes(FlashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}
