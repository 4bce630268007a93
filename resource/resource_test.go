package resource

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/vgcore"
)

func newObject() *Object {
	o := new(Object)
	o.Init()
	return o
}

func TestReferenceRelease(t *testing.T) {
	o := newObject()
	const n = 5
	for range n {
		o.Reference()
	}
	if got := o.ReferenceCount(); got != n+1 {
		t.Fatalf("ReferenceCount() = %d, want %d", got, n+1)
	}

	teardowns := 0
	frees := 0
	for range n + 1 {
		if o.Release(func() { teardowns++ }) {
			frees++
		}
	}
	if teardowns != 1 || frees != 1 {
		t.Errorf("teardown ran %d times and freed %d times, want 1 and 1", teardowns, frees)
	}
}

func TestConcurrentReferences(t *testing.T) {
	o := newObject()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.Reference()
		}()
	}
	wg.Wait()
	if got := o.ReferenceCount(); got != 51 {
		t.Errorf("ReferenceCount() = %d, want 51", got)
	}
}

func TestResurrection(t *testing.T) {
	o := newObject()
	key := new(UserDataKey)
	destroyed := 0
	if err := o.SetUserData(key, "v", func(any) { destroyed++ }); err != nil {
		t.Fatal(err)
	}

	resurrect := true
	teardown := func() {
		if resurrect {
			o.Reference()
			resurrect = false
		}
	}

	if o.Release(teardown) {
		t.Fatal("Release() freed a resurrected object")
	}
	if got := o.ReferenceCount(); got != 1 {
		t.Errorf("ReferenceCount() after resurrection = %d, want 1", got)
	}
	if destroyed != 0 {
		t.Error("user data destroyed while object was resurrected")
	}
	if o.UserData(key) != "v" {
		t.Error("user data lost after resurrection")
	}

	if !o.Release(teardown) {
		t.Fatal("second Release() did not free the object")
	}
	if destroyed != 1 {
		t.Errorf("user data destructor ran %d times, want 1", destroyed)
	}
}

func TestReleaseWithoutReferencePanics(t *testing.T) {
	o := newObject()
	o.Release(nil)
	defer func() {
		if recover() == nil {
			t.Error("Release() of a freed object did not panic")
		}
	}()
	o.Release(nil)
}

func TestSentinel(t *testing.T) {
	var o Object
	o.InitNil(vgcore.NoMemory)

	if !o.IsNil() {
		t.Fatal("IsNil() = false for sentinel")
	}
	o.Reference()
	if o.Release(func() { t.Error("teardown ran on sentinel") }) {
		t.Error("Release() freed a sentinel")
	}
	if got := o.ReferenceCount(); got != 0 {
		t.Errorf("ReferenceCount() = %d, want 0", got)
	}
	if err := o.SetUserData(new(UserDataKey), 1, nil); !errors.Is(err, vgcore.NoMemory) {
		t.Errorf("SetUserData() on sentinel = %v, want NoMemory", err)
	}
	_ = o.SetError(vgcore.InvalidIndex)
	if o.Status() != vgcore.NoMemory {
		t.Errorf("sentinel status changed to %v", o.Status())
	}
}

func TestNilObject(t *testing.T) {
	var o *Object
	o.Reference()
	if o.Release(nil) {
		t.Error("Release() on nil object returned true")
	}
	if o.ReferenceCount() != 0 || o.UserData(new(UserDataKey)) != nil {
		t.Error("nil object accessors not safe")
	}
	if o.Status() != vgcore.NoMemory {
		t.Errorf("Status() = %v, want NoMemory", o.Status())
	}
}

func TestSetErrorFirstWins(t *testing.T) {
	o := newObject()
	if err := o.SetError(vgcore.Success); err != nil {
		t.Errorf("SetError(Success) = %v, want nil", err)
	}
	if err := o.SetError(vgcore.InvalidIndex); !errors.Is(err, vgcore.InvalidIndex) {
		t.Errorf("SetError() = %v", err)
	}
	_ = o.SetError(vgcore.SurfaceFinished)
	if got := o.Status(); got != vgcore.InvalidIndex {
		t.Errorf("Status() = %v, want InvalidIndex", got)
	}
}

func TestUserDataReplaceAndRemove(t *testing.T) {
	o := newObject()
	key := new(UserDataKey)
	other := new(UserDataKey)
	var log []any
	destroy := func(v any) { log = append(log, v) }

	_ = o.SetUserData(key, "first", destroy)
	_ = o.SetUserData(other, "other", destroy)
	_ = o.SetUserData(key, "second", destroy)

	if len(log) != 1 || log[0] != "first" {
		t.Fatalf("replacing ran destructors %v, want [first]", log)
	}
	if o.UserData(key) != "second" || o.UserData(other) != "other" {
		t.Error("UserData() returned the wrong values")
	}

	_ = o.SetUserData(key, nil, nil)
	if o.UserData(key) != nil {
		t.Error("nil value did not remove the entry")
	}
	if len(log) != 2 || log[1] != "second" {
		t.Errorf("removal destructors %v, want [first second]", log)
	}

	if err := o.SetUserData(nil, 1, nil); err == nil {
		t.Error("SetUserData(nil key) succeeded")
	}

	o.Release(nil)
	if len(log) != 3 || log[2] != "other" {
		t.Errorf("final destructors %v, want [first second other]", log)
	}
}
