package model

// NotificationKind вид уведомления пользователю
type NotificationKind string

const (
	NotificationNone    NotificationKind = ""
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification кратковременное сообщение для пользователя.
// Пустое значение означает отсутствие сообщения.
type Notification struct {
	Kind NotificationKind `json:"kind,omitempty"`
	Text string           `json:"text"`
}

// Empty сообщает, что активного уведомления нет
func (n Notification) Empty() bool {
	return n.Kind == NotificationNone
}
