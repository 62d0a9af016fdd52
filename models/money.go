package models

import "fmt"

// Money is an amount in centavos (1/100 PHP).
type Money int64

// PHP converts whole pesos to Money.
func PHP(pesos int64) Money {
	return Money(pesos * 100)
}

// Percent returns p percent of m, rounded half-up to the centavo.
func (m Money) Percent(p int64) Money {
	v := int64(m) * p
	if v >= 0 {
		return Money((v + 50) / 100)
	}
	return Money((v - 50) / 100)
}

// Times multiplies m by a whole quantity (nights, rooms).
func (m Money) Times(n int) Money {
	return m * Money(n)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
