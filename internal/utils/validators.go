package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
)

// mobileRegex (не экспортируется) используется внутри ValidateMobile.
// mobileRegex (not exported) is used inside ValidateMobile.
var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidateMobile проверяет формат индийского мобильного номера:
// ровно 10 цифр, первая цифра от 6 до 9.
// ValidateMobile checks the Indian mobile number format:
// exactly 10 digits, first digit 6 through 9.
func ValidateMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// ParsePositiveNumber разбирает json.Number и требует положительное
// конечное число. Возвращает значение или ошибку.
// ParsePositiveNumber parses a json.Number and requires a positive
// finite number. Returns the value or an error.
func ParsePositiveNumber(n json.Number) (float64, error) {
	v, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("не число: %q", n.String())
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("значение должно быть положительным: %v", v)
	}
	return v, nil
}

// Round2 округляет значение до двух знаков после запятой.
// Round2 rounds a value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
