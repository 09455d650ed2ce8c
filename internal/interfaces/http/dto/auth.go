// Package dto 提供 HTTP 层数据传输对象
package dto

// RegisterRequest 注册请求
//
// 字段级校验在应用层完成，提示文案由应用层统一给出。
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Message string   `json:"message"`
	User    *UserDTO `json:"user"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	User        *UserDTO `json:"user"`
}
