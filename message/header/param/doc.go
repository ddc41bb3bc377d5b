// Package param provides the parameterized header values used by MIME bodies.
// These are the values of the Content-Type header (and, for attachment parts,
// the Content-Disposition header): a primary value such as "text/plain"
// followed by parameters such as charset or boundary.
//
// A Value is immutable. Build a new one with New or Modify.
package param
