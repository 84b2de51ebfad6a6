package controllers

import (
	"encoding/json"
	"io"
	"os"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhook receives provider events, verifies the signature and maps
// them onto the abstract payment lifecycle. Stripe redelivers events until
// it sees a 2xx, and the reconciliation is idempotent, so every verified
// event is acknowledged even when it changes nothing.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Cannot read request body")
		return
	}

	endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), endpointSecret)
	if err != nil {
		response.BadRequest(c, "Invalid webhook signature")
		return
	}

	svc := paymentService()

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			response.BadRequest(c, "Malformed event payload")
			return
		}
		if err := svc.ApplyPaymentEvent(intent.ID, constants.PaymentEventSucceeded); err != nil {
			utils.LogError("apply %s for %s: %v", event.Type, intent.ID, err)
			response.ServerError(c)
			return
		}

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			response.BadRequest(c, "Malformed event payload")
			return
		}
		if err := svc.ApplyPaymentEvent(intent.ID, constants.PaymentEventFailed); err != nil {
			utils.LogError("apply %s for %s: %v", event.Type, intent.ID, err)
			response.ServerError(c)
			return
		}

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			response.BadRequest(c, "Malformed event payload")
			return
		}
		intentID := ""
		if charge.PaymentIntent != nil {
			intentID = charge.PaymentIntent.ID
		}
		if err := svc.ApplyPaymentEvent(intentID, constants.PaymentEventRefundCompleted); err != nil {
			utils.LogError("apply %s for %s: %v", event.Type, intentID, err)
			response.ServerError(c)
			return
		}

	default:
		utils.LogInfo("ignoring stripe event type %s", event.Type)
	}

	response.Success(c, nil)
}

// ApplyPaymentEvent is the internal feed for abstract payment events, used
// by back-office tooling and by tests exercising reconciliation directly.
func ApplyPaymentEvent(c *gin.Context) {
	var input dto.PaymentEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := paymentService().ApplyPaymentEvent(input.PaymentIntentID, input.Event); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, nil)
}
