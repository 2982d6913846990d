package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

// BranchUseCase CRUD de sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create registra una sucursal; nace activa salvo indicación contraria.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" || in.Address == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.BranchStatusActive
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return branchToResponse(branch), nil
}

// GetByID retorna una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return branchToResponse(branch), nil
}

// List retorna sucursales paginadas.
func (uc *BranchUseCase) List(limit, offset int) ([]*dto.BranchResponse, error) {
	list, err := uc.branchRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, branchToResponse(b))
	}
	return out, nil
}

// Update actualiza los datos de una sucursal.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Status != nil {
		branch.Status = *in.Status
	}
	branch.UpdatedAt = time.Now()
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	return branchToResponse(branch), nil
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(id string) error {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.branchRepo.Delete(id)
}

func branchToResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address, Phone: b.Phone, Status: b.Status}
}
