// Package instance builds a registry from instantiation records.
//
// A record names one resource of one object together with its initial
// value. Records are applied in order: the first record for an object
// identity creates the object, later records add resources to it.
//
// Records usually come from a YAML table:
//
//	objects:
//	  - type: 43001
//	    instance: 0
//	    resources:
//	      - {type: 27004, kind: integer, value: 101}
//	      - {type: 27001, kind: link, value: {type: 43000, instance: 0}}
package instance
