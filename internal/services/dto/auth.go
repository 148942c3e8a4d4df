package dto

// SignupRequest покрывает обе ветки регистрации: для обычного пользователя
// достаточно email и пароля, для тренера заполняются профессиональные поля.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Role            string `json:"role" validate:"omitempty,is-user-role"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	Experience      string `json:"experience"`
	Certifications  string `json:"certifications"`
	Specializations string `json:"specializations"`
	Bio             string `json:"bio"`
	Motivation      string `json:"motivation"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type SignupResponse struct {
	Message       string `json:"message"`
	UserID        string `json:"user_id,omitempty"`
	ApplicationID string `json:"application_id,omitempty"`
	Pending       bool   `json:"pending,omitempty"`
}

type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
