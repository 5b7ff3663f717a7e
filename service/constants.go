package service

const (
	MaxProjectionYears   = 50        // horizonte duro de la simulación
	DebtClearedTolerance = 0.01      // tolerancia para considerar el préstamo pagado
	MaxEventsPerKind     = 100       // máximo de eventos por colección
	MaxStartingDebt      = 186_544.0 // tope para Medicina y algunos cursos de aviación
	MaxStartingIncome    = 500_000.0
	MaxWageGrowthPercent = 10.0
	MaxIndexationPercent = 10.0
	MaxReductionPercent  = 100.0
	MaxPromotionPercent  = 100.0 // un ascenso como mucho duplica el ingreso
	MinFirstYear         = 2026
	MinStartingAge       = 17
)

// Umbrales de reembolso obligatorio 2025-26
const (
	RepaymentThreshold = 67_000.0
	FirstBandTop       = 125_000.0
	SecondBandTop      = 179_285.0
	FirstBandRate      = 0.15
	SecondBandBase     = 8_700.0
	SecondBandRate     = 0.17
	TopBandRate        = 0.10
)
