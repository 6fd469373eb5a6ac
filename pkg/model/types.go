package model

// Reserved resource type IDs used by the flow extension.
// These values are a fixed external contract shared with firmware images.
const (
	// InputLinkType holds a link to the object a value is pulled from.
	InputLinkType uint16 = 27000

	// OutputLinkType holds a link to an object a value is pushed to.
	// An object may carry several output links (one per instance).
	OutputLinkType uint16 = 27001

	// InputValueType is the upstream endpoint of an object's data path.
	InputValueType uint16 = 27002

	// CurrentValueType is the internal state of an object.
	CurrentValueType uint16 = 27003

	// OutputValueType is the downstream endpoint of an object's data path.
	OutputValueType uint16 = 27004

	// CurrentTimeType is the last time value fed to the interval evaluator.
	CurrentTimeType uint16 = 27005

	// IntervalTimeType is the activation period.
	IntervalTimeType uint16 = 27006

	// LastActivationTimeType is the time of the most recent activation.
	LastActivationTimeType uint16 = 27007
)

// defaultInstance is the instance ID used for the well-known flow resources.
const defaultInstance uint16 = 0
