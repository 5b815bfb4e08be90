// Package shipment contains the order shape consumed by the status-dispatch
// engine. These orders are owned by an external repository: the engine reads
// them, authorizes the requesting user, and advances their status through the
// repository abstraction. It never creates or deletes them.
package shipment
