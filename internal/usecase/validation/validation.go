// Package validation holds the pure checks applied to every value that crosses
// a boundary (HTTP input, backend requests). Failures never reach the network.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"assessment_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	MinAmount int64 = 100
	MaxAmount int64 = 10_000_000
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	validate     = validator.New(validator.WithRequiredStructEnabled())
)

// Result collects every problem found instead of stopping at the first one.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`

	amountInvalid bool
}

func ok() Result { return Result{Valid: true} }

func (r *Result) add(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

func (r *Result) merge(other Result) {
	if other.Valid {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, other.Errors...)
	r.amountInvalid = r.amountInvalid || other.amountInvalid
}

// Join merges several results into one.
func Join(results ...Result) Result {
	r := ok()
	for _, other := range results {
		r.merge(other)
	}
	return r
}

// Err converts a failed result into a taxonomy error. An amount-only failure
// is INVALID_AMOUNT; anything else is INVALID_DATA.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	msg := strings.Join(r.Errors, "; ")
	if r.amountInvalid && len(r.Errors) == 1 {
		return entities.NewPaymentError(entities.ErrorKindInvalidAmount, msg, nil)
	}
	return entities.NewPaymentError(entities.ErrorKindInvalidData, msg, nil)
}

func requireID(field, v string) Result {
	if strings.TrimSpace(v) == "" {
		r := ok()
		r.add(field + " is required")
		return r
	}
	return ok()
}

func ValidateSessionID(id string) Result { return requireID("sessionId", id) }
func ValidateTestID(id string) Result    { return requireID("testId", id) }
func ValidateUserID(id string) Result    { return requireID("userId", id) }

func ValidateAmount(amount int64) Result {
	r := ok()
	if amount < MinAmount || amount > MaxAmount {
		r.add(fmt.Sprintf("amount must be between %d and %d", MinAmount, MaxAmount))
		r.amountInvalid = true
	}
	return r
}

func ValidateEmail(email string) Result {
	r := ok()
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		r.add("email is invalid")
	}
	return r
}

func ValidateTimestamp(field string, ts time.Time) Result {
	r := ok()
	if ts.IsZero() {
		r.add(field + " is not a valid date")
	}
	return r
}

// ParseTimestamp accepts RFC3339 with or without fractional seconds.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func ValidatePricingTier(name entities.PricingTierName) Result {
	r := ok()
	if !name.Valid() {
		r.add("pricingTier must be early or regular")
	}
	return r
}

func ValidateGateway(g entities.Gateway) Result {
	r := ok()
	if !g.Valid() {
		r.add("gateway must be razorpay or paypal")
	}
	return r
}

// ValidateCreateOrderRequest checks shape and also that the amount is one of
// the two amounts the price table allows.
func ValidateCreateOrderRequest(req entities.CreateOrderRequest, table entities.PriceTable) Result {
	r := ok()
	r.merge(structErrors(req))
	r.merge(ValidateSessionID(req.SessionID))
	r.merge(ValidateTestID(req.TestID))
	r.merge(ValidateUserID(req.UserID))
	r.merge(ValidateEmail(req.Email))
	r.merge(ValidateGateway(req.Gateway))
	r.merge(ValidatePricingTier(req.PricingTier))
	r.merge(ValidateTimestamp("sessionStartTime", req.SessionStartTime))

	amount := ValidateAmount(req.Amount)
	r.merge(amount)
	if amount.Valid && req.Amount != table.EarlyAmount && req.Amount != table.RegularAmount {
		r.add(fmt.Sprintf("amount %d does not match the early (%d) or regular (%d) price", req.Amount, table.EarlyAmount, table.RegularAmount))
		r.amountInvalid = true
	}
	if req.Currency != "" && table.Currency != "" && !strings.EqualFold(req.Currency, table.Currency) {
		r.add(fmt.Sprintf("currency %s does not match %s", req.Currency, table.Currency))
	}

	if strings.TrimSpace(req.Metadata.UserAgent) == "" {
		r.add("metadata.userAgent is required")
	}
	if req.Metadata.Timestamp.IsZero() {
		r.add("metadata.timestamp is required")
	}
	return dedupe(r)
}

func ValidatePaymentCompletionRequest(req entities.PaymentCompletionRequest) Result {
	r := ok()
	r.merge(ValidateUserID(req.UserID))
	r.merge(requireID("originalSessionId", req.OriginalSessionID))
	r.merge(ValidateTestID(req.TestID))
	r.merge(requireID("paymentSessionId", req.PaymentSessionID))
	r.merge(ValidateGateway(req.Gateway))
	r.merge(ValidateAmount(req.Amount))

	switch p := req.Proof.(type) {
	case entities.RazorpayProof:
		if req.Gateway != entities.GatewayRazorpay {
			r.add("razorpay proof sent for gateway " + string(req.Gateway))
		}
		r.merge(requireID("paymentData.order_id", p.OrderID))
		r.merge(requireID("paymentData.payment_id", p.PaymentID))
		r.merge(requireID("paymentData.razorpay_signature", p.Signature))
	case entities.PayPalProof:
		if req.Gateway != entities.GatewayPayPal {
			r.add("paypal proof sent for gateway " + string(req.Gateway))
		}
		r.merge(requireID("paymentData.order_id", p.OrderID))
		r.merge(requireID("paymentData.payment_id", p.CaptureID))
	default:
		r.add("paymentData proof is required")
	}

	switch req.Status {
	case entities.CompletionStatusSuccess, entities.CompletionStatusFailed:
	default:
		r.add("paymentData.status must be success or failed")
	}
	return r
}

// SanitizeString trims and drops control characters from ids received over HTTP.
func SanitizeString(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

func structErrors(v any) Result {
	r := ok()
	err := validate.Struct(v)
	if err == nil {
		return r
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.add(err.Error())
		return r
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			r.add(lowerFirst(fe.Field()) + " is required")
		case "min", "max":
			r.add(fmt.Sprintf("%s must be between %d and %d", lowerFirst(fe.Field()), MinAmount, MaxAmount))
			if fe.Field() == "Amount" {
				r.amountInvalid = true
			}
		default:
			r.add(fmt.Sprintf("%s failed %s", lowerFirst(fe.Field()), fe.Tag()))
		}
	}
	return r
}

func dedupe(r Result) Result {
	if r.Valid {
		return r
	}
	seen := make(map[string]struct{}, len(r.Errors))
	out := r.Errors[:0]
	for _, e := range r.Errors {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	r.Errors = out
	return r
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
