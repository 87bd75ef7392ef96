package xconfig

import (
	"fmt"
	"reflect"
)

func validateConfigPointer(config interface{}) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	configElem := configValue.Elem()
	if configElem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must point to a struct, got %s", configElem.Kind())
	}

	return configElem, nil
}

func applyDefaultTagsRecursive(v reflect.Value) error {
	if !v.CanSet() || v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyDefaultTagsRecursive(field); err != nil {
				return err
			}
			continue
		}

		defaultValue, ok := fieldType.Tag.Lookup("default")
		if !ok || !field.IsZero() {
			continue
		}

		if err := setValueFromString(field, defaultValue); err != nil {
			return fmt.Errorf("invalid default for field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

// defaulter is implemented by config sections that compute their own defaults.
type defaulter interface {
	Default()
}

func callDefaultMethodsRecursive(v reflect.Value) error {
	if !v.CanSet() || v.Kind() != reflect.Struct {
		return nil
	}

	if d, ok := v.Addr().Interface().(defaulter); ok {
		d.Default()
	}

	for i := 0; i < v.NumField(); i++ {
		if err := callDefaultMethodsRecursive(v.Field(i)); err != nil {
			return err
		}
	}

	return nil
}
