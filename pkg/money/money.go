// Пакет money — преобразование денежных величин между минорными единицами
// (центы, int64 — формат API) и мажорными (для отображения).
// Контракт границы: каждое чтение money-значения конвертируется ровно один раз,
// каждая запись — ровно один раз в обратную сторону.
package money

import (
	"fmt"
	"math"
)

// Major — перевод минорных единиц в мажорные (150 -> 1.5).
func Major(cents int64) float64 {
	return float64(cents) / 100
}

// FromMajor — перевод мажорных единиц в минорные с округлением
// до ближайшего цента (1.005 -> 101, а не 100 из-за float-представления).
func FromMajor(major float64) int64 {
	return int64(math.Round(major * 100))
}

// Format — строка вида "12.34" для логов и CLI-вывода.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
