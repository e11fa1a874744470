// Package requestid assigns every incoming request an id, makes it
// available through the context and the logger, and forwards it on calls to
// the course API via Transport.
package requestid
