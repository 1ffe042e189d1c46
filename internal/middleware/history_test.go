package middleware

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemebot/internal/models"
)

func newHistoryApp(size int) *fiber.App {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{CookieHTTPOnly: true})
	app.Use(sessionMiddleware)

	hm := NewHistoryMiddleware(size)
	app.Use(hm.Load)

	app.Post("/add", func(c fiber.Ctx) error {
		hm.Append(c, models.Exchange{Query: c.Query("q"), Reply: "r"})
		return c.SendString(strconv.Itoa(len(History(c))))
	})
	app.Post("/clear", func(c fiber.Ctx) error {
		hm.Clear(c)
		return c.SendString(strconv.Itoa(len(History(c))))
	})
	app.Get("/list", func(c fiber.Ctx) error {
		var qs []string
		for _, e := range History(c) {
			qs = append(qs, e.Query)
		}
		return c.SendString(strings.Join(qs, ","))
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, cookies []*http.Cookie) (string, []*http.Cookie) {
	t.Helper()
	req, _ := http.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	if got := resp.Cookies(); len(got) > 0 {
		cookies = got
	}
	return string(body), cookies
}

func TestHistoryKeepsLastExchanges(t *testing.T) {
	app := newHistoryApp(2)

	_, cookies := do(t, app, http.MethodPost, "/add?q=one", nil)
	_, cookies = do(t, app, http.MethodPost, "/add?q=two", cookies)
	n, cookies := do(t, app, http.MethodPost, "/add?q=three", cookies)
	assert.Equal(t, "2", n)

	list, _ := do(t, app, http.MethodGet, "/list", cookies)
	assert.Equal(t, "two,three", list)
}

func TestHistoryClear(t *testing.T) {
	app := newHistoryApp(5)

	_, cookies := do(t, app, http.MethodPost, "/add?q=farming", nil)
	n, cookies := do(t, app, http.MethodPost, "/clear", cookies)
	assert.Equal(t, "0", n)

	list, _ := do(t, app, http.MethodGet, "/list", cookies)
	assert.Empty(t, list)
}

func TestHistoryWithoutSession(t *testing.T) {
	app := fiber.New()
	hm := NewHistoryMiddleware(0)
	app.Use(hm.Load)
	app.Get("/", func(c fiber.Ctx) error {
		hm.Append(c, models.Exchange{Query: "q"})
		return c.SendString(strconv.Itoa(len(History(c))))
	})

	body, _ := do(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, "1", body)
}
