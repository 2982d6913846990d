package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
)

// UserUseCase CRUD de usuarios. Las contraseñas se guardan con bcrypt.
type UserUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, branchRepo: branchRepo}
}

// Create registra un usuario en una sucursal.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdministrator && in.Role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		LastName:     in.LastName,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		BranchID:     in.BranchID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// GetByID retorna un usuario sin credenciales.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return userToResponse(user), nil
}

// List retorna usuarios, opcionalmente filtrados por sucursal.
func (uc *UserUseCase) List(branchID string, limit, offset int) ([]*dto.UserResponse, error) {
	list, err := uc.userRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

// Update actualiza los datos de un usuario; si llega contraseña nueva la
// re-hashea.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdministrator && *in.Role != entity.RoleUser {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.BranchID != nil {
		branch, err := uc.branchRepo.GetByID(*in.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrBranchNotFound
		}
		user.BranchID = *in.BranchID
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Username: u.Username,
		Role:     u.Role,
		BranchID: u.BranchID,
	}
}
