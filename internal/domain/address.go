// Package domain contains the core data types for the binday service.
// This package has zero external dependencies and is imported by every other
// internal package (upstream, service, handler).
package domain

// Address is a single property returned by a postcode lookup.
// UPRN is the council's Unique Property Reference Number; it is only used
// for collection queries after being checked to be digits-only.
type Address struct {
	UPRN     string `json:"uprn"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
}
