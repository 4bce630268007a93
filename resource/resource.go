// Package resource implements the lifecycle shared by every reference
// counted vgcore object: an atomic reference count, a sticky error status
// and a table of user data with destructors.
//
// Concrete kinds (font faces, surfaces) embed an [Object] and build their
// Reference and Destroy methods on top of it. An Object initialized with
// [Object.InitNil] is an immutable sentinel: it carries an error status,
// ignores reference counting and rejects user data. Sentinels let
// constructors return a usable value even when creation failed.
//
// Reference counting is atomic. Everything else about an Object is meant
// to be used from one goroutine at a time.
package resource

import (
	"sync/atomic"

	"github.com/gogpu/vgcore"
)

// InvalidCount is the reference count of a nil sentinel.
const InvalidCount = -1

// DestroyFunc releases a user data value.
type DestroyFunc func(value any)

// UserDataKey identifies a user data slot by its address.
type UserDataKey struct {
	_ byte
}

type userData struct {
	key     *UserDataKey
	value   any
	destroy DestroyFunc
}

// Object is the embeddable lifecycle state of a resource.
// An Object must not be copied after Init.
type Object struct {
	count    atomic.Int32
	status   atomic.Uint32
	userData []userData
}

// Init readies o with one reference and a Success status.
func (o *Object) Init() {
	o.count.Store(1)
	o.status.Store(uint32(vgcore.Success))
	o.userData = nil
}

// InitNil turns o into a sentinel carrying status.
func (o *Object) InitNil(status vgcore.Status) {
	o.count.Store(InvalidCount)
	o.status.Store(uint32(status))
	o.userData = nil
}

// IsNil reports whether o is nil or a sentinel.
func (o *Object) IsNil() bool {
	return o == nil || o.count.Load() == InvalidCount
}

// Reference adds a reference. It does nothing for sentinels.
func (o *Object) Reference() {
	if o.IsNil() {
		return
	}
	o.count.Add(1)
}

// Release drops a reference. When the last reference goes away it runs
// teardown, then checks the count again: teardown may resurrect the object
// by taking a new reference, in which case Release returns false and the
// object stays alive. Otherwise the user data destructors run and Release
// returns true; the caller must not use the object afterwards.
//
// Releasing a sentinel does nothing. Releasing an object that holds no
// reference panics.
func (o *Object) Release(teardown func()) bool {
	if o.IsNil() {
		return false
	}
	n := o.count.Add(-1)
	if n < 0 {
		panic("resource: release of an object without references")
	}
	if n > 0 {
		return false
	}

	if teardown != nil {
		teardown()
	}
	if o.count.Load() > 0 {
		vgcore.Logger().Debug("resource: resurrected during teardown",
			"references", o.count.Load())
		return false
	}

	o.finiUserData()
	return true
}

// ReferenceCount returns the current number of references, or 0 for nil
// and sentinel objects.
func (o *Object) ReferenceCount() int {
	if o.IsNil() {
		return 0
	}
	return int(o.count.Load())
}

// Status returns the first error recorded on o, or Success.
// A nil Object reports NoMemory.
func (o *Object) Status() vgcore.Status {
	if o == nil {
		return vgcore.NoMemory
	}
	return vgcore.Status(o.status.Load())
}

// SetError records status unless an error is already recorded, and
// returns status as an error. Success is never recorded.
func (o *Object) SetError(status vgcore.Status) error {
	if status == vgcore.Success {
		return nil
	}
	if o != nil {
		o.status.CompareAndSwap(uint32(vgcore.Success), uint32(status))
	}
	return status
}

// UserData returns the value stored under key, or nil.
func (o *Object) UserData(key *UserDataKey) any {
	if o == nil {
		return nil
	}
	for _, ud := range o.userData {
		if ud.key == key {
			return ud.value
		}
	}
	return nil
}

// SetUserData stores value under key. An existing value is released with
// its destructor first. A nil value removes the entry. Sentinels refuse
// user data and return their status.
func (o *Object) SetUserData(key *UserDataKey, value any, destroy DestroyFunc) error {
	if o.IsNil() {
		return o.Status()
	}
	if key == nil {
		return vgcore.UserError
	}

	for i := range o.userData {
		if o.userData[i].key != key {
			continue
		}
		old := o.userData[i]
		o.userData = append(o.userData[:i], o.userData[i+1:]...)
		if old.destroy != nil {
			old.destroy(old.value)
		}
		break
	}

	if value != nil {
		o.userData = append(o.userData, userData{key: key, value: value, destroy: destroy})
	}
	return nil
}

func (o *Object) finiUserData() {
	entries := o.userData
	o.userData = nil
	for _, ud := range entries {
		if ud.destroy != nil {
			ud.destroy(ud.value)
		}
	}
}
