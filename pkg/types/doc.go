// Package types defines the record entities, the Store interface, document
// shapes, and the standard errors shared by every linkshelf component.
package types
