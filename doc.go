// Package dashboard keeps a personal finance history and derives the
// dashboard figures from it.
//
// The data model is three flat collections: transactions, investments and
// accounts, held by a Store and persisted as JSON by a Persister such as
// DirStore. Every record carries its own currency and amounts are
// decimal.Decimal values.
//
// On top of the store, the aggregate functions compute what the dashboard
// shows: period-filtered totals, month-bucketed trends, category breakdowns
// with shares, net worth and the analytics key metrics. Rates resolves
// exchange rates between currencies and never fails, degrading through a
// USD pivot down to the identity rate.
//
// The cmd and renderer packages wrap all of this into the fd command line
// tool.
package dashboard
