package model

import (
	"errors"
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// Link synchronization.
//
// An InputLink resource makes an object pull its state from the linked
// source object. OutputLink resources make an object push its state to each
// linked destination. Values move between default resources (see
// ReadDefaultValue and WriteDefaultValue).

// InputLink returns the target of the object's input link.
func (o *Object) InputLink() (Link, bool, error) {
	r, ok := o.Resource(InputLinkType, defaultInstance)
	if !ok {
		return Link{}, false, nil
	}
	l, err := r.value.AsLink()
	if err != nil {
		return Link{}, true, err
	}
	return l, true, nil
}

// OutputLinks returns the targets of the object's output links in
// declaration order.
func (o *Object) OutputLinks() []Link {
	var links []Link
	for _, r := range o.resources {
		if r.typeID != OutputLinkType {
			continue
		}
		if l, err := r.value.AsLink(); err == nil {
			links = append(links, l)
		}
	}
	return links
}

// PullFromInputLink copies the source object's input sync value into this
// object's default write resource. An object without an InputLink resource
// is left unchanged and no error is returned.
func (o *Object) PullFromInputLink() error {
	r, ok := o.Resource(InputLinkType, defaultInstance)
	if !ok {
		return nil
	}

	target, err := r.value.AsLink()
	if err != nil {
		return o.linkFailure("pull", &LinkError{Source: o.Ref(), Index: r.instanceID, Err: err})
	}

	src, ok := o.Lookup(target.Type, target.Instance)
	if !ok {
		return o.linkFailure("pull", &LinkError{Source: o.Ref(), Target: target, Index: r.instanceID, Err: ErrLinkTargetMissing})
	}

	if err := o.registry.enter(o, false); err != nil {
		return o.linkFailure("pull", &LinkError{Source: o.Ref(), Target: target, Index: r.instanceID, Err: err})
	}
	defer o.registry.leave(o, false)

	v, err := src.behavior.OnInputSync(src)
	if err != nil {
		return o.linkFailure("pull", &LinkError{Source: o.Ref(), Target: target, Index: r.instanceID, Err: err})
	}

	o.registry.trace(log.Event{
		Category: log.CategoryPull,
		Object:   o.logRef(),
		Peer:     &log.ObjectRef{Type: src.typeID, Instance: src.instanceID},
		Value:    valueData(v),
	})

	if err := o.WriteDefaultValue(v); err != nil {
		return fmt.Errorf("pull into %s: %w", o, err)
	}
	return nil
}

// PushToOutputLinks writes this object's default value into every object
// named by its OutputLink resources, in declaration order. A failure on one
// link does not stop the others; all failures are returned joined, each as
// a *LinkError.
func (o *Object) PushToOutputLinks() error {
	v, err := o.ReadDefaultValue()
	if err != nil {
		return err
	}

	if err := o.registry.enter(o, true); err != nil {
		return fmt.Errorf("push from %s: %w", o, err)
	}
	defer o.registry.leave(o, true)

	var errs []error
	for _, r := range o.Resources() {
		if r.typeID != OutputLinkType {
			continue
		}
		if err := o.pushOne(r, v); err != nil {
			errs = append(errs, o.linkFailure("push", err))
		}
	}
	return errors.Join(errs...)
}

func (o *Object) pushOne(r *Resource, v Value) *LinkError {
	target, err := r.value.AsLink()
	if err != nil {
		return &LinkError{Source: o.Ref(), Index: r.instanceID, Err: err}
	}

	dst, ok := o.Lookup(target.Type, target.Instance)
	if !ok {
		return &LinkError{Source: o.Ref(), Target: target, Index: r.instanceID, Err: ErrLinkTargetMissing}
	}

	o.registry.trace(log.Event{
		Category: log.CategoryPush,
		Object:   o.logRef(),
		Peer:     &log.ObjectRef{Type: dst.typeID, Instance: dst.instanceID},
		Value:    valueData(v),
	})

	if err := dst.WriteDefaultValue(v); err != nil {
		return &LinkError{Source: o.Ref(), Target: target, Index: r.instanceID, Err: err}
	}
	return nil
}

// linkFailure reports err to the operational log and the flow trace.
func (o *Object) linkFailure(op string, err *LinkError) error {
	o.registry.logger.Debug("link synchronization failed",
		"op", op,
		"object", o.String(),
		"target", err.Target.String(),
		"error", err.Err)
	o.registry.traceError(o, op, err)
	return err
}
