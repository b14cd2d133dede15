package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Dispatcher routes inbound updates. The admin engine gets first refusal;
// anything it does not consume is handled as a customer interaction.
type Dispatcher struct {
	admin    *AdminEngine
	customer *CustomerEngine
}

func NewDispatcher(admin *AdminEngine, customer *CustomerEngine) *Dispatcher {
	return &Dispatcher{admin: admin, customer: customer}
}

// Dispatch processes a single Telegram update end to end.
func (d *Dispatcher) Dispatch(update tgbotapi.Update) {
	ev, ok := FromUpdate(update)
	if !ok {
		return
	}
	if d.admin.Handle(ev) {
		return
	}
	d.customer.Handle(ev)
}
