package services

// Notifier delivers out-of-band messages to a user's Telegram chat.
// Delivery is best-effort: callers log failures and move on, they never
// roll back committed state over a failed send.
type Notifier interface {
	SendOTP(chatID, code string) error
	SendRoundResult(chatID, roomName string, prize float64) error
}
