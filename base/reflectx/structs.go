// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helper functions for
// working with struct fields through the reflect system.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Nested structs without a
// default tag are set recursively. Only the first of a comma-separated
// list of defaults is used, and ranges (containing a colon) are skipped.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: object of type %T is not a struct", obj)
	}
	typ := val.Type()
	var errs []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if fv.Kind() == reflect.Struct && (!ok || def == "") {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err.Error())
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if fv.Kind() != reflect.Slice {
			def = strings.Split(def, ",")[0]
		}
		if strings.Contains(def, ":") && fv.Kind() != reflect.String {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Sprintf("field %s in %s: %v", f.Name, typ.Name(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("SetFromDefaultTags: %s", strings.Join(errs, "; "))
	}
	return nil
}

var durationType = reflect.TypeFor[time.Duration]()

// SetFromString sets the given settable value from its string
// representation. It supports [encoding.TextUnmarshaler] values,
// strings, bools, numbers, [time.Duration] values, and slices of those
// separated by commas.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}

// ToString returns the string representation of the given value in
// the form accepted by [SetFromString].
func ToString(v reflect.Value) string {
	v = NonPointerValue(v)
	if !v.IsValid() {
		return ""
	}
	if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return ""
		}
		return string(b)
	}
	if v.Type() == durationType {
		return time.Duration(v.Int()).String()
	}
	if v.Kind() == reflect.Slice {
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = ToString(v.Index(i))
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v.Interface())
}
