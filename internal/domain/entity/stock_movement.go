package entity

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // salida
)

// DefaultReason motivo registrado cuando el formulario no informa ninguno.
const DefaultReason = "Não especificado"

// DateLayout formato de la fecha de negocio de un movimiento.
const DateLayout = "2006-01-02"

// StockMovement es un asiento del ledger. Nunca se actualiza ni se elimina.
type StockMovement struct {
	ID           string
	ProductID    string
	ProductName  string // copia desnormalizada del nombre al momento del registro
	Type         string // entry, exit
	Quantity     int    // siempre > 0; el signo lo da Type
	Reason       string
	Date         string // YYYY-MM-DD
	Observations string
	Timestamp    int64 // instante de creación, epoch en milisegundos
	UserID       string
}

// OwnerID implementa access.Owned.
func (m *StockMovement) OwnerID() string { return m.UserID }

// IsValidMovementType indica si t es entry o exit.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}
