package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// ErrUnauthorizedOrderAccess is the hard failure for a requester that does not
// own the order. It is deliberately distinct from the "Order not found"
// outcome so missing and forbidden are never conflated.
var ErrUnauthorizedOrderAccess = errors.New("Unauthorized access to order")

// Result messages of the status-dispatch engine. The cancellation notification
// carries a trailing period the returned message does not; both texts are part
// of the engine's contract.
const (
	MessageOrderNotFound     = "Order not found"
	MessageOrderAlreadyPaid  = "Order already paid"
	MessageOrderCanceled     = "Order has been canceled"
	MessageOrderProcessing   = "Order processing"
	MessageCanceledNoStock   = "Order canceled due to insufficient stock"
	MessagePaymentSuccessful = "Payment successful"
	MessagePaymentFailed     = "Payment failed"
	MessageUnhandledStatus   = "Unhandled order status"
	notificationNoStock      = "Order canceled due to insufficient stock."
	notificationPaymentOK    = "Payment successful. Your order is being processed."
)

// FulfillOrderCommandHandler is the status-dispatch engine. It authorizes the
// requesting user and runs the workflow step matching the order's current
// status: stock check with cancellation for processing orders, payment capture
// with notification for pending ones.
type FulfillOrderCommandHandler struct {
	shipments ports.ShipmentRepository
	inventory ports.InventoryChecker
	payments  ports.PaymentProcessor
	notifier  ports.Notifier
}

// NewFulfillOrderCommandHandler creates the status-dispatch engine with its
// four collaborators.
func NewFulfillOrderCommandHandler(
	shipments ports.ShipmentRepository,
	inventory ports.InventoryChecker,
	payments ports.PaymentProcessor,
	notifier ports.Notifier,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		shipments: shipments,
		inventory: inventory,
		payments:  payments,
		notifier:  notifier,
	}
}

// Handle runs one dispatch step for the command's order.
//
// A missing order is a normal negative Outcome, not an error. An owner
// mismatch fails with ErrUnauthorizedOrderAccess. Statuses the engine does not
// model return the unhandled-status Outcome without mutation.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return Outcome{}, err
	}

	aggregate, err := h.shipments.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return Outcome{}, err
	}

	if aggregate == nil {
		return Outcome{Message: MessageOrderNotFound}, nil
	}

	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return Outcome{}, ErrUnauthorizedOrderAccess
	}

	switch aggregate.Status() {
	case shipment.Paid:
		return Outcome{Message: MessageOrderAlreadyPaid}, nil
	case shipment.Canceled:
		return Outcome{Message: MessageOrderCanceled}, nil
	case shipment.Processing:
		return h.handleProcessing(ctx, cmd, aggregate)
	case shipment.Pending:
		return h.handlePending(ctx, cmd, aggregate)
	default:
		return Outcome{Message: MessageUnhandledStatus}, nil
	}
}

func (h *FulfillOrderCommandHandler) handleProcessing(
	ctx context.Context,
	cmd FulfillOrderCommand,
	aggregate *shipment.Order,
) (Outcome, error) {
	inStock, err := h.inventory.CheckStock(ctx, aggregate.ProductID(), aggregate.Quantity())
	if err != nil {
		return Outcome{}, err
	}

	if !inStock {
		if err := h.shipments.UpdateStatus(ctx, cmd.OrderID(), shipment.Canceled); err != nil {
			return Outcome{}, err
		}

		_ = h.notifier.Send(ctx, cmd.UserID(), notificationNoStock)
		return Outcome{Message: MessageCanceledNoStock}, nil
	}

	return Outcome{Message: MessageOrderProcessing}, nil
}

func (h *FulfillOrderCommandHandler) handlePending(
	ctx context.Context,
	cmd FulfillOrderCommand,
	aggregate *shipment.Order,
) (Outcome, error) {
	result := h.payments.Charge(ctx, aggregate.Total())
	if result.Status != ports.PaymentStatusSuccess {
		// A decline is a business rejection: no mutation, no notification.
		return Outcome{Message: MessagePaymentFailed, Err: result.Error}, nil
	}

	if err := h.shipments.UpdateStatus(ctx, cmd.OrderID(), shipment.Paid); err != nil {
		return Outcome{}, err
	}

	_ = h.notifier.Send(ctx, cmd.UserID(), notificationPaymentOK)
	return Outcome{Message: MessagePaymentSuccessful, OrderID: cmd.OrderID()}, nil
}
