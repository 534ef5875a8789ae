package inventory

import (
	"context"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// Motivos ofrecidos por los formularios de entrada y salida.
var (
	EntryReasons = []string{
		"Compra",
		"Devolução",
		"Transferência entre filiais",
		"Ajuste de inventário",
		"Reposição",
		"Outros",
	}
	ExitReasons = []string{
		"Venda",
		"Transferência entre filiais",
		"Perda ou avaria",
		"Uso interno",
		"Ajuste de inventário",
		"Outros",
	}
)

// Reasons catálogo de motivos para el cliente.
func Reasons() dto.MovementReasonsResponse {
	return dto.MovementReasonsResponse{
		Entry: append([]string{}, EntryReasons...),
		Exit:  append([]string{}, ExitReasons...),
	}
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement.
// movementType vacío usa el tipo del body; los endpoints /entry y /exit lo fijan.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(
	ctx context.Context,
	actor *entity.Credential,
	movementType string,
	in dto.RegisterMovementRequest,
) (*dto.RegisterMovementResponse, error) {
	if movementType == "" {
		movementType = in.Type
	}
	input := MovementInputDTO{
		Scope:        access.ScopeFor(actor),
		UserID:       actor.Username,
		ProductID:    in.ProductID,
		Type:         movementType,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		Date:         in.Date,
		Observations: in.Observations,
	}
	mov, product, err := uc.RegisterMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Movement: dto.MovementFromEntity(mov),
		Product:  dto.ProductFromEntity(product),
	}, nil
}

// ListFromRequest lista movimientos con el filtro de la query string.
func (uc *RegisterMovementUseCase) ListFromRequest(ctx context.Context, actor *entity.Credential, in dto.MovementFilterRequest) (*dto.MovementListResponse, error) {
	list, err := uc.List(ctx, access.ScopeFor(actor), dto.FilterFromRequest(in))
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{Items: dto.MovementsFromEntities(list), Total: len(list)}, nil
}
