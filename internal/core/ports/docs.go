// Package ports defines the contracts between the application core and its adapters:
// aggregate repositories with conditional updates, the unit of work that binds them to
// one transaction, and the notifier and activity logger fed by the event dispatcher.
package ports
