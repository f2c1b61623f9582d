package usecase

import (
	"context"
	"sync"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name APIClient --name Clipboard --name Browser --name Confirmer

// APIClient определяет фасад удалённого API: один вызов на операцию
type APIClient interface {
	Create(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
	Resolve(ctx context.Context, code model.Shortcode) (string, error)
	Stats(ctx context.Context, code model.Shortcode) (int64, error)
	Update(ctx context.Context, code model.Shortcode, newURL string) error
	Delete(ctx context.Context, code model.Shortcode) error
}

// Notifier однослотовый канал уведомлений
type Notifier interface {
	Success(text string)
	Error(text string)
	Current() model.Notification
	Close()
}

// Clipboard системный буфер обмена
type Clipboard interface {
	WriteAll(text string) error
}

// Browser открывает URL в новом контексте просмотра
type Browser interface {
	OpenURL(url string) error
}

// Confirmer задаёт пользователю вопрос да/нет и блокируется до ответа
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// operationState состояние одной операции. inFlight истинно только между
// началом вызова и его завершением.
type operationState[T any] struct {
	inFlight bool
	result   *T
}

// start переводит операцию в InFlight, при необходимости сбрасывая результат
func (s *operationState[T]) start(clearResult bool) {
	s.inFlight = true
	if clearResult {
		s.result = nil
	}
}

// settle возвращает операцию в Idle
func (s *operationState[T]) settle() {
	s.inFlight = false
}

// Console модель представления: владеет пятью независимыми операциями,
// их формами, результатами и каналом уведомлений.
// Все поля защищены mu; сетевой вызов выполняется вне блокировки.
type Console struct {
	mu sync.Mutex

	api       APIClient
	notifier  Notifier
	clipboard Clipboard
	browser   Browser
	logger    *zap.Logger

	createForm  model.CreateForm
	resolveForm model.ShortcodeForm
	statsForm   model.ShortcodeForm
	updateForm  model.UpdateForm
	deleteForm  model.ShortcodeForm

	create   operationState[model.ShortenResponse]
	resolve  operationState[string]
	stats    operationState[int64]
	update   operationState[struct{}]
	deletion operationState[struct{}]

	// pendingDelete код, для которого запрошено подтверждение удаления
	pendingDelete *model.Shortcode
}

// NewConsole создает консоль с пустыми формами и без результатов
func NewConsole(api APIClient, notifier Notifier, clipboard Clipboard, browser Browser, logger *zap.Logger) *Console {
	return &Console{
		api:       api,
		notifier:  notifier,
		clipboard: clipboard,
		browser:   browser,
		logger:    logger,
	}
}

// Close уничтожает представление: останавливает таймер уведомления.
// Незавершённые вызовы доработают, но их уведомления будут отброшены.
func (c *Console) Close() {
	c.notifier.Close()
}
