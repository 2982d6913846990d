package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create registra un cliente. CI/NIT es único.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.CINIT == "" || in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.CINIT) < 6 || len(in.CINIT) > 20 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CINIT:     in.CINIT,
		Name:      in.Name,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID retorna un cliente.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List retorna clientes paginados.
func (uc *ClientUseCase) List(limit, offset int) ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clientToResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.CINIT != nil {
		if len(*in.CINIT) < 6 || len(*in.CINIT) > 20 {
			return nil, domain.ErrInvalidInput
		}
		client.CINIT = *in.CINIT
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{ID: c.ID, CINIT: c.CINIT, Name: c.Name, Phone: c.Phone}
}
