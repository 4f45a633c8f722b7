package middleware

import (
	"net/http"
	"strings"

	"assessment_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const (
	ScopeCookie       = "checkout_scope"
	ScopeHeader       = "X-Checkout-Scope"
	CurrentPathHeader = "X-Current-Path"

	scopeCookieMaxAge = 7 * 24 * 60 * 60
)

// CheckoutScope binds every request to a checkout scope, issuing a new one
// in a cookie when the browser has none.
func CheckoutScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := strings.TrimSpace(c.GetHeader(ScopeHeader))
		if scope == "" {
			scope, _ = c.Cookie(ScopeCookie)
		}
		if _, err := uuid.Parse(scope); err != nil {
			scope = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ScopeCookie, scope, scopeCookieMaxAge, "/", "", c.Request.TLS != nil, true)
		c.Request = c.Request.WithContext(entities.WithScope(c.Request.Context(), scope))
		c.Next()
	}
}

// ClientInfo captures the browser details the payment flow records: user
// agent, the page the UI is on, detected locale and the bearer ID token.
func ClientInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.GetHeader(CurrentPathHeader)
		if path == "" {
			path = c.Request.URL.Path
		}
		info := entities.ClientInfo{
			UserAgent:   c.Request.UserAgent(),
			CurrentPath: path,
			Locale:      DetectLocale(c.Request.Header),
			IDToken:     bearerToken(c.GetHeader("Authorization")),
		}
		c.Request = c.Request.WithContext(entities.WithClientInfo(c.Request.Context(), info))
		c.Next()
	}
}

// DetectLocale prefers the edge-provided country, then an explicit country
// header, then the region of the first Accept-Language tag that carries one.
func DetectLocale(h http.Header) entities.Locale {
	loc := entities.Locale{}
	tags, _, _ := language.ParseAcceptLanguage(h.Get("Accept-Language"))
	if len(tags) > 0 {
		base, _ := tags[0].Base()
		loc.Language = base.String()
	}

	for _, name := range []string{"CF-IPCountry", "X-Country-Code"} {
		if cc := countryCode(h.Get(name)); cc != "" {
			loc.Country = cc
			loc.Detected = true
			return loc
		}
	}
	for _, tag := range tags {
		if region, conf := tag.Region(); conf == language.Exact {
			loc.Country = region.String()
			loc.Detected = true
			return loc
		}
	}
	return loc
}

func countryCode(raw string) string {
	cc := strings.ToUpper(strings.TrimSpace(raw))
	// XX unknown, T1 Tor
	if len(cc) != 2 || cc == "XX" || cc == "T1" {
		return ""
	}
	return cc
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
