package config

import (
	"reflect"
	"strings"
)

// GetConfigExample uses reflection to generate an example .jirarc
// This automatically stays in sync when new fields are added to Config
func GetConfigExample() map[string]any {
	t := reflect.TypeOf(Config{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "copyToClipboard"
	case reflect.Int:
		switch fieldName {
		case "defaultBoard":
			return 42
		case "port":
			return 443
		case "timeout":
			return 30
		}
		return 0
	case reflect.String:
		switch fieldName {
		case "apiVersion":
			return DefaultAPIVersion
		case "host":
			return "jira.example.com"
		case "locale":
			return "en-US"
		case "password":
			return "api-token-or-password"
		case "protocol":
			return DefaultProtocol
		case "username":
			return "jane.doe@example.com"
		default:
			return ""
		}
	}

	return nil
}
