package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/payments"

	log "github.com/sirupsen/logrus"
)

const (
	EnvProduction = "production"

	KVMemory   = "memory"
	KVRedis    = "redis"
	KVDynamoDB = "dynamodb"
)

// Development defaults, used only outside production.
const (
	defaultPort                   = 8080
	defaultAPIBaseURL             = "http://localhost:3000"
	defaultEarlyBirdMinutes       = 30
	defaultEarlyBirdPrice         = 99900
	defaultRegularPrice           = 149900
	defaultPayPalIndiaPrice       = 1200
	defaultPayPalIndiaOriginal    = 1500
	defaultPayPalIntlPrice        = 2000
	defaultPayPalIntlOriginal     = 2500
	defaultCheckoutKVTable        = "checkout_state"
	defaultRedisURL               = "redis://localhost:6379/0"
	defaultPayPalEnv              = "sandbox"
	defaultPaymentAPITimeoutValue = "30s"
	defaultAllowedOrigins         = "http://localhost:3000"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	Env            string
	Port           int
	AllowedOrigins []string

	PaymentAPIBaseURL string
	PaymentAPITimeout time.Duration
	VerifyWithBackend bool

	// PricingFromBackend replaces Catalog with the backend's /pricing table
	// at startup when it is reachable and complete.
	PricingFromBackend bool

	Razorpay payments.RazorpayConfig
	PayPal   payments.PayPalConfig

	EarlyBirdDuration time.Duration
	Catalog           entities.PricingCatalog

	KVBackend       string
	RedisURL        string
	CheckoutKVTable string

	FirebaseCredentialsFile string
	AuthMock                bool
}

func (c Config) IsProduction() bool { return c.Env == EnvProduction }

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds the configuration from getenv. In production every price,
// gateway key and the backend URL must be set; elsewhere missing values fall
// back to development defaults and are reported as a warning.
func LoadFrom(getenv func(string) string) (Config, error) {
	r := &reader{getenv: getenv, production: strings.EqualFold(getenv("APP_ENV"), EnvProduction)}

	cfg := Config{
		Env:                strings.ToLower(getenvDefault(getenv, "APP_ENV", "development")),
		Port:               r.optionalInt("PORT", defaultPort),
		PaymentAPIBaseURL:  r.required("PAYMENT_API_BASE_URL", defaultAPIBaseURL),
		PaymentAPITimeout:  r.duration("PAYMENT_API_TIMEOUT", defaultPaymentAPITimeoutValue),
		VerifyWithBackend:  r.boolean("PAYMENT_VERIFY_ENABLED"),
		PricingFromBackend: r.boolean("PRICING_FROM_BACKEND"),
		AllowedOrigins:     splitList(getenvDefault(getenv, "CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)),

		Razorpay: payments.RazorpayConfig{
			KeyID:       r.required("RAZORPAY_KEY_ID", "rzp_test_dev"),
			KeySecret:   getenv("RAZORPAY_KEY_SECRET"),
			ScriptURL:   getenvDefault(getenv, "RAZORPAY_SCRIPT_URL", payments.DefaultRazorpayScriptURL),
			CompanyName: getenvDefault(getenv, "RAZORPAY_COMPANY_NAME", payments.DefaultCompanyName),
			ThemeColor:  getenvDefault(getenv, "RAZORPAY_THEME_COLOR", payments.DefaultRazorpayThemeColor),
		},
		PayPal: payments.PayPalConfig{
			ClientID:     r.required("PAYPAL_CLIENT_ID", "sb"),
			ClientSecret: r.required("PAYPAL_CLIENT_SECRET", ""),
			Env:          getenvDefault(getenv, "PAYPAL_ENV", defaultPayPalEnv),
			APIBase:      getenv("PAYPAL_API_BASE"),
			BrandName:    getenvDefault(getenv, "PAYPAL_BRAND_NAME", payments.DefaultPayPalBrandName),
			CompanyName:  getenvDefault(getenv, "RAZORPAY_COMPANY_NAME", payments.DefaultCompanyName),
		},

		EarlyBirdDuration: time.Duration(r.requiredInt("EARLY_BIRD_DURATION_MINUTES", defaultEarlyBirdMinutes)) * time.Minute,
		Catalog: entities.PricingCatalog{
			Razorpay: entities.PriceTable{
				Currency:      "INR",
				EarlyAmount:   int64(r.requiredInt("EARLY_BIRD_PRICE", defaultEarlyBirdPrice)),
				RegularAmount: int64(r.requiredInt("REGULAR_PRICE", defaultRegularPrice)),
			},
			PayPalIndia: entities.PriceTable{
				Currency:      "USD",
				EarlyAmount:   int64(r.requiredInt("PAYPAL_INDIA_PRICE_CENTS", defaultPayPalIndiaPrice)),
				RegularAmount: int64(r.requiredInt("PAYPAL_INDIA_ORIGINAL_PRICE_CENTS", defaultPayPalIndiaOriginal)),
			},
			PayPalInternational: entities.PriceTable{
				Currency:      "USD",
				EarlyAmount:   int64(r.requiredInt("PAYPAL_INTERNATIONAL_PRICE_CENTS", defaultPayPalIntlPrice)),
				RegularAmount: int64(r.requiredInt("PAYPAL_INTERNATIONAL_ORIGINAL_PRICE_CENTS", defaultPayPalIntlOriginal)),
			},
		},

		KVBackend:       strings.ToLower(getenvDefault(getenv, "KV_BACKEND", KVMemory)),
		RedisURL:        getenvDefault(getenv, "REDIS_URL", defaultRedisURL),
		CheckoutKVTable: getenvDefault(getenv, "CHECKOUT_KV_TABLE", defaultCheckoutKVTable),

		FirebaseCredentialsFile: getenv("FIREBASE_CREDENTIALS_FILE"),
		AuthMock:                r.boolean("AUTH_MOCK"),
	}
	cfg.PayPal.Currency = cfg.Catalog.PayPalInternational.Currency

	switch cfg.KVBackend {
	case KVMemory, KVRedis, KVDynamoDB:
	default:
		r.errs = append(r.errs, fmt.Sprintf("KV_BACKEND: unknown backend %q", cfg.KVBackend))
	}
	if cfg.IsProduction() && cfg.AuthMock {
		r.errs = append(r.errs, "AUTH_MOCK: not allowed in production")
	}

	if len(r.defaulted) > 0 {
		log.WithField("keys", strings.Join(r.defaulted, ",")).Warn("[config] using development defaults")
	}
	if len(r.errs) > 0 {
		return cfg, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(r.errs, "; "))
	}
	return cfg, nil
}

type reader struct {
	getenv     func(string) string
	production bool
	defaulted  []string
	errs       []string
}

func (r *reader) required(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	if r.production {
		r.errs = append(r.errs, key+": required in production")
		return ""
	}
	r.defaulted = append(r.defaulted, key)
	return def
}

func (r *reader) requiredInt(key string, def int) int {
	raw := strings.TrimSpace(r.getenv(key))
	if raw == "" {
		if r.production {
			r.errs = append(r.errs, key+": required in production")
			return 0
		}
		r.defaulted = append(r.defaulted, key)
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid positive integer %q", key, raw))
		return def
	}
	return n
}

func (r *reader) optionalInt(key string, def int) int {
	raw := strings.TrimSpace(r.getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid positive integer %q", key, raw))
		return def
	}
	return n
}

func (r *reader) duration(key, def string) time.Duration {
	raw := getenvDefault(r.getenv, key, def)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid duration %q", key, raw))
		return 0
	}
	return d
}

func (r *reader) boolean(key string) bool {
	raw := strings.TrimSpace(r.getenv(key))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid boolean %q", key, raw))
	}
	return v
}

func getenvDefault(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
