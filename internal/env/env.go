package env

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
)

var (
	ErrNotFound         = errors.New("environment variable with key not found")
	ErrConversionFailed = errors.New("failed to convert environment variable with key to value")
)

func errNotFound(key string) error {
	return fmt.Errorf("key: %s: %w", key, ErrNotFound)
}

func errConversionFailed(key string, typeName string) error {
	return fmt.Errorf("key: %s type: %s: %w", key, typeName, ErrConversionFailed)
}

func GetStringOrDefault(key string, defaultVal string) string {
	if val, found := os.LookupEnv(key); found {
		return val
	}

	return defaultVal
}

func GetString(key string) (string, error) {
	if val, found := os.LookupEnv(key); found {
		return val, nil
	}

	return "", errNotFound(key)
}

func MustGetString(key string) string {
	val, err := GetString(key)
	if err != nil {
		log.Fatal(err)
	}

	return val
}

func GetInt(key string) (int, error) {
	val, found := os.LookupEnv(key)
	if !found {
		return 0, errNotFound(key)
	}

	intVal, err := strconv.Atoi(val)
	if err != nil {
		return 0, errConversionFailed(key, "int")
	}

	return intVal, nil
}

func GetIntOrDefault(key string, defaultVal int) int {
	val, err := GetInt(key)
	if err != nil {
		return defaultVal
	}

	return val
}

func MustGetInt(key string) int {
	val, err := GetInt(key)
	if err != nil {
		log.Fatal(err)
	}

	return val
}
