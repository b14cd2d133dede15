package models

// Conventional order status labels. The store accepts any string as a status;
// this set only drives the admin status-selection menu.
const (
	StatusNew            = "YANGI"
	StatusInDesign       = "DIZAYN BOSQICHIDA"
	StatusClientApproval = "MIJOZ TASDIQIDA"
	StatusInProduction   = "ISHLAB CHIQARISHDA"
	StatusInstalling     = "O'RNATILMOQDA"
	StatusClosed         = "YOPILGAN"
)

// OrderStatuses lists the conventional statuses in menu order, with the emoji
// shown on the selection button.
var OrderStatuses = []struct {
	Emoji  string
	Status string
}{
	{"🟢", StatusNew},
	{"🟡", StatusInDesign},
	{"🔵", StatusClientApproval},
	{"🟣", StatusInProduction},
	{"🟤", StatusInstalling},
	{"⚫️", StatusClosed},
}
