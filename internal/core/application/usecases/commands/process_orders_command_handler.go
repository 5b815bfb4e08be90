package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// settlementScoreCutoff separates deferred type B orders from settled ones.
const settlementScoreCutoff = 50

// settlementAmountLimit is the exclusive upper bound on the amount of a type B
// order that can settle as processed.
const settlementAmountLimit = 100

// ProcessOrdersCommandHandler is the type-dispatch engine. It classifies each
// of an owner's orders by type tag, runs the matching action (file export,
// remote settlement check, flag-based completion), rederives the priority and
// persists the result.
//
// External faults from the export sink, the settlement client and the storage
// write are absorbed and recorded in-band as order statuses (export_failed,
// api_failure, api_error, db_error); the caller never sees them as errors. The
// batch is best-effort, not transactional: orders written before an
// unrecovered failure stay written.
type ProcessOrdersCommandHandler struct {
	store      ports.OrderStore
	exporter   ports.FileExporter
	settlement ports.SettlementClient
}

// NewProcessOrdersCommandHandler creates the type-dispatch engine with its
// three collaborators.
func NewProcessOrdersCommandHandler(
	store ports.OrderStore,
	exporter ports.FileExporter,
	settlement ports.SettlementClient,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		store:      store,
		exporter:   exporter,
		settlement: settlement,
	}
}

// Handle processes every order of the command's owner in sequence.
//
// It reports (true, nil) iff the owner had at least one order and every order
// was processed without an unrecovered failure. An empty set reports
// (false, nil). An unrecovered failure (order load fault, or a storage fault
// that persists while recording db_error) aborts the batch and reports
// (false, err); per-order statuses already written remain the durable record
// of what happened.
func (h *ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	orders, err := h.store.FindByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return false, err
	}

	if len(orders) == 0 {
		return false, nil
	}

	for _, aggregate := range orders {
		if err := h.processOne(ctx, aggregate, cmd.OwnerID()); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (h *ProcessOrdersCommandHandler) processOne(ctx context.Context, aggregate *order.Order, ownerID int64) error {
	h.dispatch(ctx, aggregate, ownerID)
	aggregate.RecalculatePriority()
	return h.save(ctx, aggregate)
}

// dispatch runs the type-specific action and records its outcome on the order.
// All external faults are absorbed here; dispatch itself never fails.
func (h *ProcessOrdersCommandHandler) dispatch(ctx context.Context, aggregate *order.Order, ownerID int64) {
	switch aggregate.TypeTag() {
	case order.TypeA:
		h.dispatchTypeA(ctx, aggregate, ownerID)
	case order.TypeB:
		h.dispatchTypeB(ctx, aggregate)
	case order.TypeC:
		h.dispatchTypeC(aggregate)
	default:
		_ = aggregate.ChangeStatus(order.UnknownType)
	}
}

func (h *ProcessOrdersCommandHandler) dispatchTypeA(ctx context.Context, aggregate *order.Order, ownerID int64) {
	// The artifact records the order's values before the status flips.
	if err := h.exporter.ExportTypeA(ctx, aggregate, ownerID); err != nil {
		_ = aggregate.ChangeStatus(order.ExportFailed)
		return
	}

	_ = aggregate.ChangeStatus(order.Exported)
}

func (h *ProcessOrdersCommandHandler) dispatchTypeB(ctx context.Context, aggregate *order.Order) {
	result, err := h.settlement.Call(ctx, aggregate.ID())
	if err != nil {
		_ = aggregate.ChangeStatus(order.APIFailure)
		return
	}

	if result.Outcome != ports.SettlementOutcomeSuccess {
		_ = aggregate.ChangeStatus(order.APIError)
		return
	}

	switch {
	case result.Score >= settlementScoreCutoff && aggregate.Amount() < settlementAmountLimit:
		_ = aggregate.ChangeStatus(order.Processed)
	case result.Score < settlementScoreCutoff || aggregate.Flag():
		// The flag wins whenever the first arm misses: score >= cutoff with a
		// large amount still lands in pending when the flag is raised.
		_ = aggregate.ChangeStatus(order.Pending)
	default:
		_ = aggregate.ChangeStatus(order.Error)
	}
}

func (h *ProcessOrdersCommandHandler) dispatchTypeC(aggregate *order.Order) {
	if aggregate.Flag() {
		_ = aggregate.ChangeStatus(order.Completed)
		return
	}

	_ = aggregate.ChangeStatus(order.InProgress)
}

// save persists the order. A storage fault downgrades the status to db_error
// and writes once more; a second fault is unrecovered and aborts the batch.
func (h *ProcessOrdersCommandHandler) save(ctx context.Context, aggregate *order.Order) error {
	if err := h.store.Save(ctx, aggregate); err != nil {
		_ = aggregate.ChangeStatus(order.DBError)
		return h.store.Save(ctx, aggregate)
	}

	return nil
}
