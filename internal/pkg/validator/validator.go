package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateSlice - валидация каждого элемента среза; возвращает индекс первой невалидной записи
func ValidateSlice[T any](items []T) (int, error) {
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return i, err
		}
	}
	return -1, nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
