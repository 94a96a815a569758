package entity

type (
	Token struct {
		AccessToken string `json:"access_token" validate:"required"`
		TokenType   string `json:"token_type"`
		User        *User  `json:"user"`
	}

	RegisterInput struct {
		Email       string `json:"email"        validate:"required,email"`
		Username    string `json:"username"     validate:"required,min=3,max=50"`
		Password    string `json:"password"     validate:"required,min=8"`
		FullName    string `json:"full_name"    validate:"required,max=100"`
		Role        Role   `json:"role"         validate:"required,oneof=admin seller buyer"`
		CompanyName string `json:"company_name,omitempty" validate:"max=255"`
		Phone       string `json:"phone,omitempty"        validate:"max=30"`
		Address     string `json:"address,omitempty"      validate:"max=500"`
	}

	LoginInput struct {
		Email    string `json:"email"    validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
)

// Password flow payloads keep the field names the web client sends,
// which the backend accepts as-is.
type (
	ChangePasswordInput struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword"     validate:"required,min=8"`
	}

	ForgotPasswordInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordInput struct {
		Token       string `json:"token"       validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}
)

type MessageResponse struct {
	Message string `json:"message"`
}
