// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/knothq/setting"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes a flat collection of settings into the struct pointed
// to by v. Struct fields are matched by the "setting" tag. Slice fields
// are filled from the setting's elements, map fields from its pairs and
// scalar fields from the whole value, using the same parsing rules as the
// typed converters.
func Unmarshal(settings map[string]*setting.Setting, v any) error {
	values := make(map[string]any, len(settings))
	for key, s := range settings {
		if s.ToAppend() {
			return setting.IncompleteValueError{Key: s.Key()}
		}
		values[key] = s
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "setting",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: composeDecodeHooks(
			durationHookFunc(),
			boolHookFunc(),
			textUnmarshalerHookFunc(),
			elementsHookFunc(),
			pairsHookFunc(),
			valueHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when a setting cannot be decoded into the
// struct field it is matched with.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func asSetting(data any) (*setting.Setting, bool) {
	s, ok := data.(*setting.Setting)
	return s, ok
}

func durationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		v, err := s.Value()
		if err != nil {
			return nil, err
		}
		return time.ParseDuration(v)
	}
}

func boolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Bool {
			return nil, errInvalidDecodeCondition
		}
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		return s.Bool()
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		v, err := s.Value()
		if err != nil {
			return nil, err
		}
		err = u.UnmarshalText([]byte(v))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func elementsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Slice {
			return nil, errInvalidDecodeCondition
		}
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		return s.Elements()
	}
}

func pairsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Map {
			return nil, errInvalidDecodeCondition
		}
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		pairs, err := s.Pairs()
		if err != nil {
			return nil, err
		}
		m := make(map[string]string, len(pairs))
		for _, p := range pairs {
			m[p.Key] = p.Value
		}
		return m, nil
	}
}

func valueHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		s, ok := asSetting(data)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		return s.Value()
	}
}
