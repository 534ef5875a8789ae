package ports

// MetricsRecorder puerto de salida para métricas operativas.
// La aplicación solo conoce este contrato; el adaptador (Prometheus, no-op) se inyecta en main.
type MetricsRecorder interface {
	// MovementRecorded se invoca tras confirmar la transacción de un movimiento.
	MovementRecorded(movementType string, quantity int)
	// LoginAttempt registra el resultado de un intento de login.
	LoginAttempt(success bool)
	// ActiveSessions publica el número de sesiones abiertas.
	ActiveSessions(n int)
	// ReportExported registra una exportación por formato (pdf, csv).
	ReportExported(format string)
}

// NopMetrics implementación vacía para tests o cuando no hay métricas.
type NopMetrics struct{}

func (NopMetrics) MovementRecorded(string, int) {}
func (NopMetrics) LoginAttempt(bool)            {}
func (NopMetrics) ActiveSessions(int)           {}
func (NopMetrics) ReportExported(string)        {}
