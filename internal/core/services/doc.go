// Package services implements the driving port interfaces.
// Services contain the core export logic and orchestrate
// calls to driven ports (adapters).
//
// Services depend only on domain, port and logger packages.
package services
