package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidSessionStartTime = entities.NewPaymentError(entities.ErrorKindInvalidData, "invalid session start time", nil)

// IPricingUseCase computes the early-bird tier from the session clock.
//
// Every method is a pure function of (sessionStartTime, clock.Now()); nothing is
// cached, so a tier read after a sign-in round-trip reflects the time spent.
type IPricingUseCase interface {
	CalculatePricing(sessionStartTime time.Time, table entities.PriceTable) (entities.PricingTier, error)
	IsEarlyBirdEligible(sessionStartTime time.Time) bool
	EarlyBirdTimeRemaining(sessionStartTime time.Time) int
	ValidatePricingTransition(original entities.PricingTierName, sessionStartTime time.Time) entities.PricingTransition
	Summary(sessionStartTime time.Time, table entities.PriceTable) (entities.PricingSummary, error)
	Quote(sessionStartTime time.Time, gateway entities.Gateway, table entities.PriceTable, region string) (entities.GatewayPricing, error)
	EarlyBirdDuration() time.Duration
}

type PricingUseCase struct {
	clock     interfaces.IClock
	earlyBird time.Duration
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(clock interfaces.IClock, earlyBird time.Duration) *PricingUseCase {
	return &PricingUseCase{clock: clock, earlyBird: earlyBird}
}

func (u *PricingUseCase) EarlyBirdDuration() time.Duration { return u.earlyBird }

func (u *PricingUseCase) CalculatePricing(sessionStartTime time.Time, table entities.PriceTable) (entities.PricingTier, error) {
	if sessionStartTime.IsZero() {
		return entities.PricingTier{}, ErrInvalidSessionStartTime
	}
	now := u.clock.Now()
	elapsed := now.Sub(sessionStartTime)
	if elapsed < 0 {
		// A start time in the future is treated as "just started".
		elapsed = 0
	}

	if elapsed <= u.earlyBird {
		until := sessionStartTime.Add(u.earlyBird)
		remaining := remainingMinutes(u.earlyBird - elapsed)
		return entities.PricingTier{
			Name:                 entities.PricingTierEarly,
			Amount:               table.EarlyAmount,
			Currency:             table.Currency,
			Description:          "Early bird pricing - limited time offer",
			ValidUntil:           &until,
			TimeRemainingMinutes: &remaining,
		}, nil
	}

	return entities.PricingTier{
		Name:        entities.PricingTierRegular,
		Amount:      table.RegularAmount,
		Currency:    table.Currency,
		Description: "Regular pricing",
	}, nil
}

func (u *PricingUseCase) IsEarlyBirdEligible(sessionStartTime time.Time) bool {
	if sessionStartTime.IsZero() {
		return false
	}
	return u.clock.Now().Sub(sessionStartTime) <= u.earlyBird
}

// EarlyBirdTimeRemaining returns whole minutes, rounded up, or 0 once expired.
func (u *PricingUseCase) EarlyBirdTimeRemaining(sessionStartTime time.Time) int {
	if sessionStartTime.IsZero() {
		return 0
	}
	left := u.earlyBird - u.clock.Now().Sub(sessionStartTime)
	if left <= 0 {
		return 0
	}
	return remainingMinutes(left)
}

// ValidatePricingTransition compares the tier captured at order creation with
// the tier the clock yields now. early->regular is an expected ageing of the
// session; regular->early can only mean the clock anchor was tampered with and
// is reported, never corrected.
func (u *PricingUseCase) ValidatePricingTransition(original entities.PricingTierName, sessionStartTime time.Time) entities.PricingTransition {
	current := entities.PricingTierRegular
	if u.IsEarlyBirdEligible(sessionStartTime) {
		current = entities.PricingTierEarly
	}
	out := entities.PricingTransition{Valid: true, Original: original, Current: current}

	switch {
	case original == current:
	case original == entities.PricingTierEarly && current == entities.PricingTierRegular:
		out.Transitioned = true
		out.Reason = "early bird window closed after order creation"
		log.WithFields(log.Fields{"original": original, "current": current}).Info("[pricing][usecase] tier aged early->regular")
	case original == entities.PricingTierRegular && current == entities.PricingTierEarly:
		out.Valid = false
		out.Transitioned = true
		out.Reason = "regular tier cannot become early again"
		log.WithFields(log.Fields{"original": original, "current": current, "session_start": sessionStartTime}).Error("[pricing][usecase] inconsistent tier transition regular->early")
	default:
		out.Valid = false
		out.Reason = fmt.Sprintf("unknown original tier %q", original)
	}
	return out
}

func (u *PricingUseCase) Summary(sessionStartTime time.Time, table entities.PriceTable) (entities.PricingSummary, error) {
	tier, err := u.CalculatePricing(sessionStartTime, table)
	if err != nil {
		return entities.PricingSummary{}, err
	}
	remaining := 0
	if tier.TimeRemainingMinutes != nil {
		remaining = *tier.TimeRemainingMinutes
	}
	return entities.PricingSummary{
		Tier:              tier,
		SessionStartTime:  sessionStartTime,
		EarlyBirdEligible: tier.Name == entities.PricingTierEarly,
		Urgency:           UrgencyFor(tier.Name, remaining),
		DisplayAmount:     FormatAmount(tier.Amount, table.Currency),
		DisplayOriginal:   FormatAmount(table.RegularAmount, table.Currency),
		DiscountPercent:   DiscountPercent(table.EarlyAmount, table.RegularAmount),
		Savings:           table.RegularAmount - tier.Amount,
	}, nil
}

// Quote prices one gateway for display.
func (u *PricingUseCase) Quote(sessionStartTime time.Time, gateway entities.Gateway, table entities.PriceTable, region string) (entities.GatewayPricing, error) {
	tier, err := u.CalculatePricing(sessionStartTime, table)
	if err != nil {
		return entities.GatewayPricing{}, err
	}
	return entities.GatewayPricing{
		Gateway:         gateway,
		Region:          region,
		Tier:            tier.Name,
		Amount:          tier.Amount,
		OriginalAmount:  table.RegularAmount,
		Currency:        table.Currency,
		DisplayAmount:   FormatAmount(tier.Amount, table.Currency),
		DisplayOriginal: FormatAmount(table.RegularAmount, table.Currency),
	}, nil
}

// UrgencyFor buckets the remaining early-bird minutes for display.
func UrgencyFor(tier entities.PricingTierName, remainingMinutes int) entities.UrgencyLevel {
	switch {
	case tier != entities.PricingTierEarly:
		return entities.UrgencyExpired
	case remainingMinutes <= 5:
		return entities.UrgencyHigh
	case remainingMinutes <= 15:
		return entities.UrgencyMedium
	default:
		return entities.UrgencyLow
	}
}

func DiscountPercent(early, regular int64) int {
	if regular <= 0 || early >= regular {
		return 0
	}
	return int(math.Round(float64(regular-early) / float64(regular) * 100))
}

// FormatAmount renders minor units with the currency symbol, dropping ".00".
func FormatAmount(minor int64, currency string) string {
	symbol := currency + " "
	switch strings.ToUpper(currency) {
	case "INR":
		symbol = "₹"
	case "USD":
		symbol = "$"
	}
	major := minor / 100
	cents := minor % 100
	if cents == 0 {
		return fmt.Sprintf("%s%d", symbol, major)
	}
	return fmt.Sprintf("%s%d.%02d", symbol, major, cents)
}

// ValidatePricingAmount checks that an amount is one the table can produce.
func ValidatePricingAmount(amount int64, table entities.PriceTable) error {
	if amount == table.EarlyAmount || amount == table.RegularAmount {
		return nil
	}
	return errors.Join(entities.ErrInvalidAmount, fmt.Errorf("amount %d matches no tier", amount))
}

func remainingMinutes(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(time.Minute)))
}
