// Package driven defines the driven ports (secondary adapters' interfaces)
// for partsbin. Driven ports are implemented by infrastructure adapters:
// storage backends, OCR services, review surfaces, hooks, and configuration.
package driven
