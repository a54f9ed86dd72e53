// Package services implements the driving port interfaces.
// Services hold the content resolution pipeline (list, fetch, assemble)
// and orchestrate calls to driven ports (adapters).
package services
