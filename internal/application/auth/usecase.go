// Package auth implementa el login de usuarios y la emisión de tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/repository"
	"github.com/jmcalvo/puntoventa-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt almacenado, genera
// JWT y retorna token + usuario. Un username inexistente y una contraseña
// incorrecta devuelven el mismo error para no filtrar qué usuarios existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BranchID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			LastName: user.LastName,
			Username: user.Username,
			Role:     user.Role,
			BranchID: user.BranchID,
		},
	}, nil
}
