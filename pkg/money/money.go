// Пакет money — перевод сумм в минорные единицы валюты и расчёт
// комиссии за обработку платежа. Платёжному шлюзу всегда передаётся
// целое число минорных единиц: дробных остатков быть не должно.
package money

import "math"

// ToMinorUnits — переводит сумму в мажорных единицах в целые минорные
// (x100) с округлением round-half-up. Обычный int64(x*100) усекает
// вниз и может занизить сумму списания.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// SurchargeSchedule — параметры комиссии: процент от суммы, фикс выше
// порога и верхняя граница. Сам расчёт — чистая функция от подытога.
type SurchargeSchedule struct {
	Rate          float64 // доля от подытога, например 0.015
	Flat          float64 // фиксированная надбавка
	FlatThreshold float64 // подытог, начиная с которого применяется Flat
	Cap           float64 // максимум комиссии; 0 — без ограничения
}

// Surcharge — комиссия для данного подытога.
func (s SurchargeSchedule) Surcharge(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	fee := subtotal * s.Rate
	if s.Flat > 0 && subtotal >= s.FlatThreshold {
		fee += s.Flat
	}
	if s.Cap > 0 && fee > s.Cap {
		fee = s.Cap
	}
	return fee
}

// Total — итог к оплате в минорных единицах: подытог + комиссия,
// округление round-half-up выполняется один раз по итоговой сумме.
func (s SurchargeSchedule) Total(subtotal float64) int64 {
	return ToMinorUnits(subtotal + s.Surcharge(subtotal))
}
