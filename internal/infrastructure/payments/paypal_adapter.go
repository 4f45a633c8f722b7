package payments

import (
	"context"
	"sync"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const DefaultPayPalBrandName = "Assessment Reports"

type PayPalAdapterOptions struct {
	BrandName string
}

type PayPalAdapter struct {
	gatewayBase
	loader interfaces.IPayPalLoader
	opts   PayPalAdapterOptions
}

var _ interfaces.IGatewayAdapter = (*PayPalAdapter)(nil)

func NewPayPalAdapter(loader interfaces.IPayPalLoader, deps Deps, opts PayPalAdapterOptions) *PayPalAdapter {
	if opts.BrandName == "" {
		opts.BrandName = DefaultPayPalBrandName
	}
	return &PayPalAdapter{
		gatewayBase: gatewayBase{Deps: deps, gateway: entities.GatewayPayPal},
		loader:      loader,
		opts:        opts,
	}
}

func (a *PayPalAdapter) Gateway() entities.Gateway { return entities.GatewayPayPal }

func (a *PayPalAdapter) DisplayInfo() entities.GatewayDisplayInfo {
	return entities.GatewayDisplayInfo{
		Gateway:     entities.GatewayPayPal,
		Name:        "PayPal",
		Description: "Pay with your PayPal account or a card",
		Currency:    "USD",
		Methods:     []string{"paypal", "card"},
		Available:   true,
	}
}

func (a *PayPalAdapter) Available(ctx context.Context) bool {
	_, err := a.loader.Load(ctx)
	return err == nil
}

// lazyOrder creates the backend and PayPal orders the first time the buttons
// ask for one and hands the same order back afterwards.
type lazyOrder struct {
	mu     sync.Mutex
	ticket *entities.OrderTicket
	order  entities.PayPalOrder
}

func (o *lazyOrder) get() (*entities.OrderTicket, entities.PayPalOrder) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ticket, o.order
}

// InitiatePayment renders the buttons and waits for the payer. No order
// exists until the buttons call createOrder.
func (a *PayPalAdapter) InitiatePayment(ctx context.Context, sessionID, testID string) entities.PaymentResult {
	fields := log.Fields{"session_id": sessionID, "test_id": testID}

	sdk, err := a.loader.Load(ctx)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][paypal] sdk unavailable")
		return entities.FailureResult(err)
	}

	quote, err := a.Pricing(ctx, entities.ClientInfoFromContext(ctx).Locale)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][paypal] pricing failed")
		return entities.FailureResult(err)
	}

	description := a.opts.BrandName + " - Assessment Report"
	lazy := &lazyOrder{}
	createOrder := func(orderCtx context.Context) (string, error) {
		lazy.mu.Lock()
		defer lazy.mu.Unlock()
		if lazy.ticket != nil {
			return lazy.order.ID, nil
		}

		ticket, err := a.Orders.RetryOrderCreation(orderCtx, entities.GatewayPayPal, sessionID, testID, a.retries())
		if err != nil {
			return "", err
		}
		order, err := sdk.CreateOrder(orderCtx, entities.PayPalOrderRequest{
			ReferenceID: ticket.Request.TestID,
			CustomID:    ticket.Response.PaymentSessionID,
			Description: description,
			Amount:      ticket.Response.Amount,
			Currency:    ticket.Response.Currency,
		})
		if err != nil {
			return "", translatePayPal(err, entities.ErrorKindOrderCreationFailed)
		}
		lazy.ticket = &ticket
		lazy.order = order
		a.track(orderCtx, entities.AnalyticsEvent{
			Name:     entities.EventCheckoutOpened,
			Tier:     ticket.Request.PricingTier,
			Amount:   ticket.Response.Amount,
			Currency: ticket.Response.Currency,
		})
		return order.ID, nil
	}

	paymentStart := a.Clock.Now()
	res, err := sdk.RenderButtons(ctx, entities.PayPalButtonsConfig{
		Currency:    quote.Currency,
		Amount:      quote.Amount,
		Description: description,
	}, createOrder)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][paypal] buttons failed")
		return entities.FailureResult(translatePayPal(err, entities.ErrorKindScriptLoadFailed))
	}

	switch res.Outcome {
	case entities.OutcomeCancelled:
		log.WithFields(fields).Info("[payments][paypal] payer cancelled")
		return entities.CancelledResult()
	case entities.OutcomeApproved:
	default:
		err := paypalFailure(res.Failure)
		log.WithFields(fields).WithError(err).Warn("[payments][paypal] payment failed")
		return entities.FailureResult(err)
	}

	ticket, order := lazy.get()
	if ticket == nil {
		log.WithFields(fields).Error("[payments][paypal] approval without order")
		return entities.FailureResult(entities.NewPaymentError(entities.ErrorKindOrderCreationFailed, "", ErrApprovalWithoutOrder))
	}
	fields["paypal_order_id"] = order.ID
	if res.OrderID != order.ID {
		log.WithFields(fields).WithField("reported_order_id", res.OrderID).Error("[payments][paypal] order id mismatch")
		return entities.FailureResult(entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", ErrOrderMismatch))
	}

	capture, err := sdk.CaptureOrder(ctx, order.ID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][paypal] capture failed")
		return entities.FailureResult(translatePayPal(err, entities.ErrorKindPaymentFailed))
	}
	if capture.Status != "COMPLETED" {
		log.WithFields(fields).WithField("status", capture.Status).Error("[payments][paypal] capture not completed")
		return entities.FailureResult(entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", ErrCaptureNotCompleted))
	}
	if capture.Amount != 0 && capture.Amount != ticket.Response.Amount {
		log.WithFields(fields).WithFields(log.Fields{"captured": capture.Amount, "ordered": ticket.Response.Amount}).
			Warn("[payments][paypal] captured amount differs from order")
	}

	payerID := capture.PayerID
	if payerID == "" {
		payerID = res.PayerID
	}
	// the gateway's own order id wins over the backend transaction id
	transactionID := capture.OrderID
	if transactionID == "" {
		transactionID = ticket.Response.TransactionID
	}

	result := entities.SuccessResult(entities.PayPalPaymentData{
		OrderID:          order.ID,
		CaptureID:        capture.CaptureID,
		PayerID:          payerID,
		PayerEmail:       capture.PayerEmail,
		Amount:           ticket.Response.Amount,
		Currency:         ticket.Response.Currency,
		Status:           capture.Status,
		PaymentSessionID: ticket.Response.PaymentSessionID,
	})
	return a.finish(ctx, completion{
		ticket:        *ticket,
		orderID:       order.ID,
		transactionID: transactionID,
		proof:         entities.PayPalProof{OrderID: order.ID, CaptureID: capture.CaptureID, PayerID: payerID},
		paymentStart:  paymentStart,
	}, result)
}
