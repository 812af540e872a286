package utils

import (
	"reflect"
	"strings"
)

// Clean trims surrounding whitespace. Key lookups (mobile numbers, usernames)
// go through this so stray spaces from form input or spreadsheets don't break
// matching.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// TrimStrings trims every settable string field on a pointer-to-struct
// record before it is persisted. Non-string fields are left alone.
func TrimStrings(rec any) {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr {
		return
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
