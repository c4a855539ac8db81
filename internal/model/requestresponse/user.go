package requestresponse

// RegisterRequest : тело запроса на регистрацию пользователя
type RegisterRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// RegisterResponse : ответ на успешную регистрацию
type RegisterResponse struct {
	Response struct {
		UserUUID string `json:"user_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Email    string `json:"email" example:"user@example.com"`
	} `json:"response"`
}
