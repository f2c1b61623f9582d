package model

// CreateForm поля формы сокращения URL.
// CustomShortcode собирается формой, но сервису не отправляется.
type CreateForm struct {
	URL             string `json:"url"`
	CustomShortcode string `json:"customShortcode"`
}

// ShortcodeForm форма с единственным полем shortcode.
// Каждая операция владеет собственным экземпляром.
type ShortcodeForm struct {
	Shortcode string `json:"shortcode"`
}

// UpdateForm поля формы замены URL
type UpdateForm struct {
	Shortcode string `json:"shortcode"`
	NewURL    string `json:"newUrl"`
}

// OperationView снимок операции, возвращающей результат
type OperationView[F any, R any] struct {
	Form     F    `json:"form"`
	Valid    bool `json:"valid"`
	InFlight bool `json:"inFlight"`
	Result   *R   `json:"result"`
}

// ActionView снимок операции без результата (только подтверждение)
type ActionView[F any] struct {
	Form     F    `json:"form"`
	Valid    bool `json:"valid"`
	InFlight bool `json:"inFlight"`
}

// DeleteView снимок операции удаления вместе с ожидающим подтверждением
type DeleteView struct {
	Form     ShortcodeForm `json:"form"`
	Valid    bool          `json:"valid"`
	InFlight bool          `json:"inFlight"`
	// Pending код, для которого запрошено подтверждение удаления
	Pending *Shortcode `json:"pendingConfirmation"`
}

// View полный снимок состояния консоли
type View struct {
	Create       OperationView[CreateForm, ShortenResponse] `json:"create"`
	Resolve      OperationView[ShortcodeForm, string]       `json:"resolve"`
	Stats        OperationView[ShortcodeForm, int64]        `json:"stats"`
	Update       ActionView[UpdateForm]                     `json:"update"`
	Delete       DeleteView                                 `json:"delete"`
	Notification Notification                               `json:"notification"`
}
