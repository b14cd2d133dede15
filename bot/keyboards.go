package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/utils"
)

// Main-menu reply buttons; the customer engine matches incoming text against
// these labels.
const (
	menuPlaceOrder  = "🧾 Buyurtma berish"
	menuPortfolio   = "📂 Ishlarimiz (Portfolio)"
	menuOrderStatus = "📊 Buyurtmam holati"
	menuContact     = "📞 Bog'lanish"
	menuAbout       = "ℹ️ Agentlik haqida"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuPlaceOrder),
			tgbotapi.NewKeyboardButton(menuPortfolio),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuOrderStatus),
			tgbotapi.NewKeyboardButton(menuContact),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuAbout),
		),
	)
}

func phoneRequestKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("📲 Raqamni yuborish"),
		),
	)
	kb.OneTimeKeyboard = true
	return kb
}

func serviceKeyboard(services []models.Service) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, svc := range services {
		label := fmt.Sprintf("%s %s", svc.Emoji, svc.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, svc.CallbackID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func budgetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💵 1 000 000 gacha", "budget_1m")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💵 1 000 000 – 3 000 000", "budget_1_3m")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💵 3 000 000 – 5 000 000", "budget_3_5m")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💵 5 000 000 dan yuqori", "budget_5m_plus")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🤝 Aniq emas, kelishamiz", "budget_kelishamiz")),
	)
}

func fileUploadKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("❌ Fayl yo'q", "no_file")),
	)
}

func confirmOrderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✅ Tasdiqlash", "confirm_order")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✏️ O'zgartirish", "edit_order")),
	)
}

func portfolioCategoriesKeyboard(categories []models.PortfolioCategory) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range categories {
		label := fmt.Sprintf("%s %s", cat.Emoji, cat.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cat.CallbackID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "back_main"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func portfolioBackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(menuPlaceOrder, "start_order")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Asosiy menyu", "back_main")),
	)
}

func adminMenuKeyboard(isSuperAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Oxirgi buyurtmalar", "admin_orders")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🆕 Yangi buyurtmalar", "admin_new_orders")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔍 Buyurtma qidirish", "admin_search")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📝 Status o'zgartirish", "admin_change_status")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📢 Broadcast", "admin_broadcast")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🗂 Katalog", "admin_catalog")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⚙️ Sozlamalar", "admin_settings")),
	}
	if isSuperAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Xodimlar", "admin_workers"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Asosiy menyu", "back_main"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func statusKeyboard(orderID string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, entry := range models.OrderStatuses {
		label := fmt.Sprintf("%s %s", entry.Emoji, entry.Status)
		data := fmt.Sprintf("status_%s_%s", orderID, entry.Status)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func broadcastConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✅ Ha, yuborilsin", "broadcast_confirm")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("❌ Bekor qilish", "broadcast_cancel")),
	)
}

// broadcastKeyboard builds the inline URL buttons attached to a broadcast.
// Returns nil when no buttons were specified.
func broadcastKeyboard(specs []utils.ButtonSpec) interface{} {
	if len(specs) == 0 {
		return nil
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, spec := range specs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(spec.Label, spec.URL),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return kb
}

func catalogMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Xizmat qo'shish", "catalog_add_service")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➖ Xizmat o'chirish", "catalog_del_service")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Portfolio bo'limi qo'shish", "catalog_add_category")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➖ Portfolio bo'limi o'chirish", "catalog_del_category")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Ish qo'shish", "catalog_add_item")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➖ Ish o'chirish", "catalog_del_item")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_back")),
	)
}

func settingsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("☎️ Telefon 1", "set_phone1")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("☎️ Telefon 2", "set_phone2")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📲 Telegram", "set_telegram")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📍 Manzil", "set_address")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("ℹ️ Agentlik haqida matn", "set_about")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_back")),
	)
}

func workersKeyboard(workers []models.Admin) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Xodim qo'shish", "worker_add")),
	}
	for _, worker := range workers {
		label := fmt.Sprintf("❌ %s (%d)", workerLabel(worker), worker.UserID)
		data := fmt.Sprintf("worker_del_%d", worker.UserID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_back"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func workerLabel(worker models.Admin) string {
	if worker.FullName != "" {
		return worker.FullName
	}
	if worker.Username != "" {
		return "@" + worker.Username
	}
	return "xodim"
}

func deleteServicesKeyboard(services []models.Service) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, svc := range services {
		label := fmt.Sprintf("❌ %s %s", svc.Emoji, svc.Name)
		data := fmt.Sprintf("svc_del_%d", svc.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func deleteCategoriesKeyboard(categories []models.PortfolioCategory) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range categories {
		label := fmt.Sprintf("❌ %s %s", cat.Emoji, cat.Name)
		data := fmt.Sprintf("cat_del_%d", cat.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func deleteItemsKeyboard(items []models.PortfolioItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		label := fmt.Sprintf("❌ %s", item.Title)
		data := fmt.Sprintf("item_del_%d", item.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func itemCategoryKeyboard(categories []models.PortfolioCategory) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range categories {
		label := fmt.Sprintf("%s %s", cat.Emoji, cat.Name)
		data := "itemcat_" + cat.CallbackID
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Orqaga", "admin_catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func replyQuestionKeyboard(questionID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Javob berish", fmt.Sprintf("reply_q_%d", questionID)),
		),
	)
}
