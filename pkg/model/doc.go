// Package model implements the ObjectFlow object model.
//
// # Object Model Hierarchy
//
// ObjectFlow uses a 2-level hierarchy:
//
//	Registry > Object > Resource
//
// A Registry owns every Object of a flow graph. Objects group the Resources
// that make up one logical entity (a sensor, a relay, a timer). Resources are
// typed value slots.
//
//	Registry
//	├── Object 43001/0
//	│   ├── Resource 27004/0 OutputValue  (integer)
//	│   └── Resource 27001/0 OutputLink   (link -> 43000/0)
//	└── Object 43000/0
//	    ├── Resource 27002/0 InputValue   (integer)
//	    └── Resource 27000/0 InputLink    (link -> 43001/0)
//
// # Addressing
//
// Objects and resources are both identified by a (type, instance) pair of
// uint16 IDs. Identities are not required to be unique: lookups scan in
// creation order and return the first match, so a later duplicate is
// shadowed by an earlier one.
//
// # Flow Extension
//
// The reserved resource types 27000-27007 turn objects into a data flow:
//   - InputLink / OutputLink: links to other objects for pull and push
//   - InputValue / CurrentValue / OutputValue: default value slots
//   - CurrentTime / IntervalTime / LastActivationTime: interval timer
//
// # Behaviors
//
// Application logic hooks into objects through the Behavior interface. The
// registry asks its Factory for a Behavior whenever an object is created.
//
// # Concurrency
//
// Nothing in this package locks. All operations run to completion
// synchronously; callers sharing a registry across goroutines must
// serialize access to the whole graph.
package model
