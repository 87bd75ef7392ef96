package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

func camelToSnake(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			// Break before an uppercase letter unless it continues an acronym.
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// getFieldTagName returns the env name segment of a field, or "" when the
// field is excluded from serialization.
func getFieldTagName(fieldType reflect.StructField) string {
	for _, key := range []string{"env", "yaml", "json"} {
		tag, ok := fieldType.Tag.Lookup(key)
		if !ok {
			continue
		}

		name := strings.Split(tag, ",")[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return camelToSnake(fieldType.Name)
}

func loadFromEnv(v reflect.Value, prefix string) error {
	return loadFromEnvRecursive(v, strings.ToUpper(prefix))
}

func loadFromEnvRecursive(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		tagName := getFieldTagName(fieldType)
		if tagName == "" {
			continue
		}

		envKey := prefix + "_" + strings.ToUpper(tagName)

		if field.Kind() == reflect.Struct {
			if err := loadFromEnvRecursive(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue, ok := os.LookupEnv(envKey)
		if !ok || envValue == "" {
			continue
		}

		if err := setValueFromString(field, envValue); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envKey, err)
		}
	}

	return nil
}

func setValueFromString(elem reflect.Value, value string) error {
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(value)

	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		elem.SetBool(val)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		if elem.OverflowInt(val) {
			return fmt.Errorf("integer value %q overflows %s", value, elem.Type())
		}
		elem.SetInt(val)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value %q", value)
		}
		if elem.OverflowUint(val) {
			return fmt.Errorf("unsigned integer value %q overflows %s", value, elem.Type())
		}
		elem.SetUint(val)

	case reflect.Slice:
		if elem.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", elem.Type())
		}
		var values []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		elem.Set(reflect.ValueOf(values).Convert(elem.Type()))

	default:
		return fmt.Errorf("unsupported type %s", elem.Kind())
	}

	return nil
}
