// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"
	"unicode"

	"cogentcore.org/pipes/base/reflectx"
	"github.com/spf13/pflag"
)

// fieldValue is a [pflag.Value] that sets a config struct field.
type fieldValue struct {
	v   reflect.Value
	typ string

	// raw is the last value given on the command line.
	raw string
}

func (fv *fieldValue) String() string {
	return reflectx.ToString(fv.v)
}

func (fv *fieldValue) Set(s string) error {
	if err := reflectx.SetFromString(fv.v, s); err != nil {
		return err
	}
	fv.raw = s
	return nil
}

func (fv *fieldValue) Type() string {
	return fv.typ
}

// FlagName returns the command line flag name for a struct field
// name, converting CamelCase to kebab-case.
func FlagName(name string) string {
	var sb strings.Builder
	rs := []rune(name)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// AddFlags adds a flag to fs for every exported field of the struct
// pointed to by cfg. The flag name is the `flag:` tag if present,
// and otherwise the kebab-case field name, prefixed by the names of
// enclosing structs. The `desc:` tag is the usage text. Fields
// tagged `flag:"-"` are skipped.
func AddFlags(fs *pflag.FlagSet, cfg any) {
	addFlags(fs, reflectx.NonPointerValue(reflect.ValueOf(cfg)), "")
}

func addFlags(fs *pflag.FlagSet, val reflect.Value, prefix string) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := f.Tag.Lookup("flag")
		if name == "-" {
			continue
		}
		if !ok || name == "" {
			name = FlagName(f.Name)
		}
		name = prefix + name
		fv := val.Field(i)
		if fv.Kind() == reflect.Struct && !isTextValue(fv) {
			addFlags(fs, fv, name+"-")
			continue
		}
		v := &fieldValue{v: fv, typ: fv.Type().Name()}
		if v.typ == "" {
			v.typ = fv.Type().String()
		}
		fl := fs.VarPF(v, name, f.Tag.Get("short"), f.Tag.Get("desc"))
		if fv.Kind() == reflect.Bool {
			fl.NoOptDefVal = "true"
		}
	}
}

func isTextValue(v reflect.Value) bool {
	_, ok := v.Addr().Interface().(interface{ UnmarshalText([]byte) error })
	return ok
}

// reapplyFlags sets again every flag that was given on the command
// line, so that flags take precedence over config files.
func reapplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		if fv, ok := fl.Value.(*fieldValue); ok {
			err = fv.Set(fv.raw)
		}
	})
	return err
}
