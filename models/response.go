package models

// Model response untuk dokumentasi swagger.

type ErrorResponse struct {
	Error string `json:"error" example:"Data tidak ditemukan"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Berhasil"`
}

type LoginResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type PayrollGenerateResponse struct {
	Message string    `json:"message" example:"Payroll berhasil digenerate"`
	Period  string    `json:"period" example:"2025-06"`
	Count   int       `json:"count" example:"12"`
	Data    []Payroll `json:"data"`
}

type QRCodeResponse struct {
	Date    string `json:"date" example:"2025-06-02"`
	Payload string `json:"payload"`
	QRCode  string `json:"qr_code"`
}
