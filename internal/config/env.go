package config

import (
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and overwrites any field whose
// `env` tag names a set environment variable.
func applyEnvOverrides(cfg *Config) {
	overrideStruct(reflect.ValueOf(cfg).Elem())
}

func overrideStruct(v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct && t.Field(i).Tag.Get("env") == "" {
			overrideStruct(field)
			continue
		}

		envName := t.Field(i).Tag.Get("env")
		if envName == "" {
			continue
		}
		raw, ok := os.LookupEnv(envName)
		if !ok || raw == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int, reflect.Int32, reflect.Int64:
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				field.SetInt(n)
			}
		case reflect.Bool:
			if b, err := strconv.ParseBool(raw); err == nil {
				field.SetBool(b)
			}
		}
	}
}
