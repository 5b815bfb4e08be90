// Package order contains the aggregate processed by the type-dispatch engine.
// An Order carries an open-set type tag, a monetary amount, a caller-supplied
// flag and the derived status/priority pair. Status and priority are pure
// functions of the order's inputs and the outcome of external calls at
// processing time; they change only through the processing use case, never
// directly by callers.
package order
