// Package connectors holds the clients for remote content hosts.
// Each subpackage implements the driven repository ports for one host.
package connectors
