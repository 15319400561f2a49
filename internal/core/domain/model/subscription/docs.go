// Package subscription contains the per-organization billing tier record
// that gates the marketplace's resource quotas.
package subscription
