package service

// CompulsoryRepayment returns the mandatory annual repayment for a taxable
// income under the 2025-26 schedule. No rounding is applied.
func CompulsoryRepayment(income float64) float64 {
	switch {
	case income <= RepaymentThreshold:
		return 0
	case income <= FirstBandTop:
		return (income - RepaymentThreshold) * FirstBandRate
	case income <= SecondBandTop:
		return SecondBandBase + (income-FirstBandTop)*SecondBandRate
	default:
		// por encima del tercer tramo se paga sobre el ingreso completo
		return income * TopBandRate
	}
}
