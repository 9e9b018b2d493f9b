// Package payments creates payment intents with the external payment
// processor. Only intent creation is supported; confirmation happens in the
// browser with the returned client secret.
package payments
