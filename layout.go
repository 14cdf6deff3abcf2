// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import (
	"reflect"
	"unsafe"
)

// OffsetOf returns the byte offset of the named field within the
// struct type T, as laid out by the compiler.
//
// field must name a field declared directly in T; promoted fields of
// embedded structs are rejected because their reflect offset is
// relative to the embedded struct, not to T. Panics if T is not a
// struct type or the field is missing.
func OffsetOf[T any](field string) uintptr {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic("bitops: OffsetOf of non-struct type " + t.String())
	}
	f, ok := t.FieldByName(field)
	if !ok {
		panic("bitops: type " + t.String() + " has no field " + field)
	}
	if len(f.Index) != 1 {
		panic("bitops: field " + field + " is promoted from an embedded struct")
	}
	return f.Offset
}

// ContainerOf returns a pointer to the struct of type T enclosing the
// field that fieldPtr points to.
//
// fieldPtr must genuinely point at the named field of a live T;
// violating this is undefined behavior, not checked. Because the field
// is part of the same allocation as its container, the subtraction
// stays inside that allocation and the returned pointer is valid for
// as long as the container is.
//
//	type waiter struct {
//	    deadline int64
//	    ticket   uint32
//	}
//
//	w := bitops.ContainerOf[waiter](unsafe.Pointer(t), "ticket")
func ContainerOf[T any](fieldPtr unsafe.Pointer, field string) *T {
	return (*T)(unsafe.Add(fieldPtr, -int(OffsetOf[T](field))))
}
