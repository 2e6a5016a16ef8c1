package domain

// Error is a catalog-defined failure carried by Result. Code is a stable
// identifier consumed by API clients, Description is meant for humans.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrNone marks the absence of an error. It is never a valid failure payload.
var ErrNone = Error{}

func NewError(code, description string) Error {
	return Error{Code: code, Description: description}
}

func (e Error) IsNone() bool {
	return e == ErrNone
}

func (e Error) Error() string {
	return e.Code + ": " + e.Description
}

var (
	ErrInvalidCredentials   = NewError("User.InvalidCredentials", "Invalid email/password")
	ErrUserNotFound         = NewError("User.NotFound", "User was not found in the system.")
	ErrRefreshTokenNotFound = NewError("User.RefreshTokenNotFound", "Refresh token not found or expired")
	ErrInvalidToken         = NewError("User.InvalidToken", "Token is invalid or expired")
	ErrRefreshTokenInvalid  = NewError("Auth.RefreshToken.Invalid", "The provided refresh token is invalid or inactive.")

	ErrDuplicateEmail = NewError("User.DuplicateEmail", "Another user with the same email already exists")
	ErrPollNotFound   = NewError("Poll.NotFound", "Poll was not found in the system.")
	ErrInvalidPoll    = NewError("Poll.Invalid", "Poll title or summary is missing or too long")
	ErrInternal       = NewError("Server.Internal", "Something went wrong, try again later")
)
