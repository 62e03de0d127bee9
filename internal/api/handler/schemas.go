package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type provisionClinicRequest struct {
	Name     string            `json:"name" validate:"required,min=2"`
	Settings map[string]string `json:"settings"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin doctor nurse receptionist pharmacist labtech accountant"`
}
