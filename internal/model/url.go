package model

// Shortcode непрозрачный идентификатор сокращённой ссылки на стороне сервиса
type Shortcode string

func (c Shortcode) String() string {
	return string(c)
}

// ShortenRequest тело запроса на сокращение URL
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse ответ сервиса с назначенным коротким кодом
type ShortenResponse struct {
	Shortcode Shortcode `json:"shortcode"`
}

// UpdateRequest тело запроса на замену оригинального URL
type UpdateRequest struct {
	URL string `json:"url"`
}

// ErrorResponse тело ответа сервиса при ошибке. Поле message опционально.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}
