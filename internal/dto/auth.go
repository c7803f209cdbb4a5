package dto

// StoreLoginRequest defines credentials for a store owner login.
type StoreLoginRequest struct {
	StoreID  string `json:"storeID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest defines credentials for the back-office admin login.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token. Store logins also include
// the store profile so the client can bootstrap its session.
type LoginResponse struct {
	Token string         `json:"token"`
	Store *StoreResponse `json:"store,omitempty"`
}
