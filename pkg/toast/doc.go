// Package toast queues short notifications in the user's session so they
// survive redirects. Handlers push toasts and the next rendered page or SSE
// patch pops them into the toast container.
package toast
