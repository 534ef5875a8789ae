package dto

// RegisterMovementRequest entrada para registrar una entrada o salida.
// En /movements/entry y /movements/exit el Type lo fija la ruta.
type RegisterMovementRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	Reason       string `json:"reason"`
	Date         string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Observations string `json:"observations"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	Observations string `json:"observations,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	UserID       string `json:"userId"`
}

// RegisterMovementResponse movimiento registrado y producto con el stock resultante.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Product  ProductResponse  `json:"product"`
}

// MovementFilterRequest filtros de consulta del ledger (query string).
type MovementFilterRequest struct {
	ProductID string `query:"productId"`
	Type      string `query:"type"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// MovementListResponse lista de movimientos, del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// MovementReasonsResponse catálogo de motivos de los formularios de entrada y salida.
type MovementReasonsResponse struct {
	Entry []string `json:"entry"`
	Exit  []string `json:"exit"`
}
