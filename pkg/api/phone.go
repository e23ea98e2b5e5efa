package api

// PhoneMaskRequest представляет значение поля ввода телефона
type PhoneMaskRequest struct {
	Value string `json:"value"`
}

// PhoneMaskResponse представляет результат форматирования
type PhoneMaskResponse struct {
	Masked string `json:"masked"`         // значение для поля ввода
	Digits string `json:"digits"`         // только цифры
	Valid  bool   `json:"valid"`          // 10 или 11 цифр
	E164   string `json:"e164,omitempty"` // +55..., только для валидных номеров
}
