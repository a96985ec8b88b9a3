package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig credenciales del administrador del dashboard, definidas por
// configuración (no hay tabla de usuarios: el sistema tiene un solo admin).
type AdminConfig struct {
	Email        string
	PasswordHash string // hash bcrypt
}

// UseCase login del administrador: verifica credenciales y emite un JWT.
type UseCase struct {
	admin  AdminConfig
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(admin AdminConfig, jwtCfg JWTConfig) *UseCase {
	return &UseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifica email/password contra las credenciales configuradas y
// genera un JWT con rol admin. Credenciales incorrectas => ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.admin.Email == "" || uc.admin.PasswordHash == "" {
		// Sin admin configurado no hay login posible.
		return nil, domain.ErrUnauthorized
	}
	if in.Email != uc.admin.Email {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Email, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
