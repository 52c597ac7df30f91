package command

type SignupCommand struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordCommand struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

type DeleteAccountCommand struct {
	Password string `json:"password"`
}
