package uploads

// NotifyLevel categorizes user-visible notifications.
type NotifyLevel string

// Notification levels.
const (
	NotifyInfo    NotifyLevel = "info"
	NotifySuccess NotifyLevel = "success"
	NotifyWarning NotifyLevel = "warning"
	NotifyError   NotifyLevel = "error"
)

// Notifier receives user-visible messages: validation warnings, transfer
// outcomes, and processing announcements. Implementations must not block.
type Notifier interface {
	Notify(level NotifyLevel, message string)
}

// Observer receives queue rendering updates as items are appended, change
// state, or are cleared.
type Observer interface {
	ItemEnqueued(item Item)
	ItemUpdated(item Item)
	QueueCleared()
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(NotifyLevel, string) {}

// NopObserver ignores all queue updates.
type NopObserver struct{}

// ItemEnqueued implements Observer.
func (NopObserver) ItemEnqueued(Item) {}

// ItemUpdated implements Observer.
func (NopObserver) ItemUpdated(Item) {}

// QueueCleared implements Observer.
func (NopObserver) QueueCleared() {}
