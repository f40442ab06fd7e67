package usecase

import (
	"context"
	"strings"

	authport "condoYaAdmin/internal/modules/auth/application/port"
	consoleport "condoYaAdmin/internal/modules/console/application/port"
	sharedauth "condoYaAdmin/internal/shared/auth"
	"condoYaAdmin/internal/shared/forms"
)

// LoginCommand carries the login form fields.
type LoginCommand struct {
	Username string `form:"username" validate:"required,min=3,max=150"`
	Password string `form:"password" validate:"required,min=4"`
}

// LoginOutput is what the session cookie stores after a successful login.
type LoginOutput struct {
	Tokens      sharedauth.TokenPair
	DisplayName string
}

type LoginUseCase struct {
	tokens authport.TokenService
}

func NewLoginUseCase(tokens authport.TokenService) *LoginUseCase {
	return &LoginUseCase{tokens: tokens}
}

// Execute validates the form console-side first, then asks the backend for a
// token pair. Validation failures carry per-field messages for the form.
func (uc *LoginUseCase) Execute(ctx context.Context, command LoginCommand) (*LoginOutput, error) {
	command.Username = strings.TrimSpace(command.Username)
	if fields := forms.FieldErrors(command); fields != nil {
		return nil, &consoleport.ValidationError{Fields: fields}
	}

	pair, err := uc.tokens.Login(ctx, command.Username, command.Password)
	if err != nil {
		return nil, err
	}

	display := command.Username
	if claims, err := sharedauth.PeekClaims(pair.Access); err == nil && claims.Username != "" {
		display = claims.Username
	}

	return &LoginOutput{Tokens: pair, DisplayName: display}, nil
}
