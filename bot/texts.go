package bot

import (
	"fmt"

	"github.com/milliybrend/reklama-bot/models"
)

// User-facing copy. The agency serves an Uzbek-speaking audience, so every
// customer-visible string is Uzbek product text.
const (
	textWelcome = `Assalomu alaykum! 👋
Siz Milliy Brend Reklama Agentligining rasmiy botidasiz.
Bu yerda siz:
• Reklama va dizayn bo'yicha buyurtma berishingiz
• Oldingi ishlarimizni ko'rishingiz
• Buyurtmangiz holatini kuzatishingiz
• Operatorlarimiz bilan bog'lanishingiz mumkin.

Quyidagilardan birini tanlang 👇`

	textSelectService = `Qanday xizmat bo'yicha buyurtma bermoqchisiz? 👇`

	textNoServices = `Hozircha buyurtma qabul qilinmaydi. Keyinroq urinib ko'ring.`

	textAskCompanyName = `Kompaniya yoki brend nomini yozing:
(Masalan: "Milliy Mebel", "The Beauty Room")`

	textAskDescription = `Qisqacha izoh yozing, sizga qanday reklama/dizayn kerak?
(Masalan: 3x6 banner, qora fon, oq harf, premium uslub, yoki: 3D yozuv kirish qismga...)`

	textAskSize = `O'lcham yoki formatni kiriting (agar ma'lum bo'lsa):
(Masalan: 3x6 m, 300x70 sm, kvadrat post 1080x1080 va hokazo)`

	textAskAddress = `Buyurtma qayerga kerak?
(Manzil yoki shahar: Samarkand, Pastdarg'om, manzil va h.k.)`

	textAskDeadline = `Qachongacha tayyor bo'lishi kerak? ⏰
(Masalan: 3 kun ichida, 10-dekabrgacha va hokazo)`

	textAskBudget = `Taxminiy budjetingizni tanlang 💰`

	textAskFile = `Agar logo, eski dizayn yoki texnik topshiriq fayllaringiz bo'lsa, shu yerga yuboring (rasm, PDF, doc va h.k.).
Agar hech narsa bo'lmasa, "❌ Fayl yo'q" tugmasini bosing.`

	textAskName = `Aloqa uchun ism va familiyangizni yozing:`

	textAskPhone = `Telefon raqamingizni yuboring 📱
Tugmadan foydalanishingiz mumkin 👇`

	textFileReceived  = "Fayl qabul qilindi ✅\n\n" + textAskName
	textPhotoReceived = "Rasm qabul qilindi ✅\n\n" + textAskName

	textAskOrderID = `Buyurtma raqamingizni kiriting:
(Masalan: MBR-1024)`

	textBadOrderID = `Noto'g'ri format. Iltimos, buyurtma raqamini to'g'ri kiriting (Masalan: MBR-1024)`

	textCheckingOrder = `Iltimos, kuting, ma'lumotlar tekshirilmoqda...`

	textOrderNotFound = `Kechirasiz, bu raqam bo'yicha buyurtma topilmadi.
Raqamni tekshirib, qaytadan urining yoki operatorlarimiz bilan bog'laning.`

	textQuestionReceived = `Savolingiz qabul qilindi ✅
Tez orada siz bilan bog'lanamiz.`

	textPortfolioSelect = `Qaysi yo'nalishdagi ishlarimizni ko'rmoqchisiz? 👇`

	textPortfolioEmpty = `Bu bo'limda hozircha ishlar yo'q.`

	textMainMenu = `Asosiy menyu 👇`

	textAdminPanel = `⚙️ Admin panel
Tanlang:`

	textNotAdmin = `Bu komanda faqat adminlar uchun.`

	textNotSuperAdmin = `Bu bo'lim faqat bosh admin uchun.`

	textNoOrders = `Hozircha buyurtmalar yo'q.`

	textSearchPrompt = `Qidiruv so'zini kiriting (ID, kompaniya nomi, ism yoki telefon):`

	textSearchEmpty = `Hech narsa topilmadi.`

	textStatusOrderIDPrompt = `Qaysi buyurtma ID sini o'zgartirishni xohlaysiz?
(Masalan: MBR-1024)`

	textAdminOrderNotFound = `Buyurtma topilmadi.`

	textBroadcastAsk = `Barcha foydalanuvchilarga yuboriladigan xabar matnini yozing:`

	textBroadcastButtonsAsk = `Xabarga tugma qo'shish uchun har bir qatorga "nom | url" yozing.
Tugma kerak bo'lmasa yoki bo'lib bo'lsangiz, "tayyor" deb yozing.`

	textBroadcastConfirm = `Tasdiqlaysizmi?`

	textBroadcastCancelled = `Xabar yuborish bekor qilindi.`

	textBroadcastMissing = `Xabar topilmadi!`

	textCatalogMenu = `🗂 Katalogni boshqarish
Tanlang:`

	textSettingsMenu = `⚙️ Sozlamalar
Qaysi qiymatni o'zgartirasiz?`

	textWorkersMenu = `👥 Xodimlar`

	textAddServicePrompt = `Yangi xizmat nomini yozing (boshiga emoji qo'yishingiz mumkin):
(Masalan: 🚗 Avto brending)`

	textAddCategoryPrompt = `Yangi portfolio bo'limi nomini yozing (boshiga emoji qo'yishingiz mumkin):
(Masalan: 🏢 Fasad bezaklari)`

	textAddItemCategoryPrompt = `Yangi ish qaysi bo'limga qo'shilsin?`

	textAddItemTitlePrompt = `Ish sarlavhasini yozing:`

	textAddItemDescriptionPrompt = `Ish tavsifini yozing:`

	textAddItemPhotoPrompt = `Ish rasmini yuboring yoki rasm bo'lmasa "yo'q" deb yozing:`

	textItemSaved = `Yangi ish katalogga qo'shildi ✅`

	textNothingToDelete = `O'chirish uchun hech narsa yo'q.`

	textDeleted = `O'chirildi ✅`

	textAlreadyDeleted = `Allaqachon o'chirilgan.`

	textSettingSaved = `Saqlandi ✅`

	textWorkerAddPrompt = `Yangi xodim Telegram ID raqamini yozing:
(Masalan: 123456789)`

	textWorkerBadID = `Noto'g'ri format. Telegram ID faqat raqamlardan iborat bo'ladi.`

	textWorkerExists = `Bu xodim allaqachon mavjud.`

	textWorkerAdded = `Xodim qo'shildi ✅`

	textWorkerRemoved = `Xodim o'chirildi ✅`

	textReplyPrompt = `Javob matnini yozing:`

	textReplySent = `Javob yuborildi ✅`

	textReplyFailed = `Javobni yetkazib bo'lmadi. Foydalanuvchi botni bloklagan bo'lishi mumkin.`

	textReplyQuestionGone = `Savol topilmadi.`

	textNoCategories = `Avval portfolio bo'limi qo'shing.`

	textSettingPrompt = `Yangi qiymatni yozing:`

	textButtonsAdded = `Tugma qo'shildi ✅
Yana qo'shishingiz yoki "tayyor" deb yozishingiz mumkin.`

	textServiceAdded = `Xizmat qo'shildi ✅`

	textCategoryAdded = `Portfolio bo'limi qo'shildi ✅`

	textRecentOrdersHeader = `📋 Oxirgi 10 ta buyurtma:`

	textNewOrdersHeader = `🆕 Yangi buyurtmalar:`
)

func textSearchResults(count int) string {
	return fmt.Sprintf(`%d ta natija topildi:`, count)
}

func textStatusSelectPrompt(orderID, currentStatus string) string {
	return fmt.Sprintf(`Buyurtma: %s
Joriy status: %s

Yangi statusni tanlang:`, orderID, currentStatus)
}

func textOrderNotFoundByID(orderID string) string {
	return fmt.Sprintf(`Buyurtma %s topilmadi.`, orderID)
}

func textBroadcastPreview(message string, buttons int) string {
	preview := fmt.Sprintf("Xabar:\n\n%s", message)
	if buttons > 0 {
		preview += fmt.Sprintf("\n\n(%d ta tugma biriktirilgan)", buttons)
	}
	return preview + "\n\n" + textBroadcastConfirm
}

func textQuestionReply(reply string) string {
	return fmt.Sprintf(`✉️ Savolingizga javob:

%s`, reply)
}

// doneTokens terminate the broadcast button-specification step.
var doneTokens = map[string]bool{"tayyor": true, "done": true}

// noPhotoTokens mark a portfolio item as text-only.
var noPhotoTokens = map[string]bool{"yo'q": true, "yoq": true, "no": true}

// budgetLabels maps budget button tokens to the stored label.
var budgetLabels = map[string]string{
	"budget_1m":         "💵 1 000 000 gacha",
	"budget_1_3m":       "💵 1 000 000 – 3 000 000",
	"budget_3_5m":       "💵 3 000 000 – 5 000 000",
	"budget_5m_plus":    "💵 5 000 000 dan yuqori",
	"budget_kelishamiz": "🤝 Aniq emas, kelishamiz",
}

func textOrderSuccess(orderID string) string {
	return fmt.Sprintf(`Rahmat! 🎉
Buyurtmangiz qabul qilindi.
Bizning menejerlarimiz tez orada siz bilan bog'lanishadi.

Buyurtma raqamingiz: %s
Shu raqam orqali "📊 Buyurtmam holati" bo'limidan kuzatishingiz mumkin.`, orderID)
}

func textContact(phone1, phone2, telegram, address string) string {
	return fmt.Sprintf(`Biz bilan quyidagi usullar orqali bog'lanishingiz mumkin:

☎️ Telefon: %s
☎️ Telefon: %s
📲 Telegram: %s
📍 Manzil: %s

Savolingiz bo'lsa, shu yerga yozib qoldiring – menejerlarimiz siz bilan bog'lanishadi.`, phone1, phone2, telegram, address)
}

func textPortfolioItem(title, description string) string {
	return fmt.Sprintf(`📍 %s
%s

Sizga shunga o'xshash reklama kerakmi?
"🧾 Buyurtma berish" tugmasini bosing 👇`, title, description)
}

func textStatusChanged(orderID, status string) string {
	return fmt.Sprintf(`Status muvaffaqiyatli o'zgartirildi ✅

Buyurtma: %s
Yangi status: %s`, orderID, status)
}

func textUserStatusNotification(orderID, status string) string {
	return fmt.Sprintf(`Buyurtmangiz %s statusi yangilandi:
Yangi status: %s`, orderID, status)
}

func textBroadcastSent(count int) string {
	return fmt.Sprintf(`Xabar %d ta foydalanuvchiga yuborildi ✅`, count)
}

func formatOrderSummary(order *models.Order) string {
	return fmt.Sprintf(`✅ Buyurtma ma'lumotlari:
• Xizmat turi: %s
• Kompaniya: %s
• Izoh: %s
• O'lcham / format: %s
• Manzil: %s
• Muddat: %s
• Budjet: %s
• Ism: %s
• Telefon: %s

Hammasi to'g'rimi?`,
		orDash(order.ServiceType), orDash(order.CompanyName), orDash(order.Description),
		orDash(order.SizeFormat), orDash(order.Address), orDash(order.Deadline),
		orDash(order.BudgetRange), orDash(order.UserName), orDash(order.Phone))
}

func formatOrderDetails(order *models.Order) string {
	files := order.FileRefs()
	filesLabel := "Yo'q"
	if len(files) > 0 {
		filesLabel = fmt.Sprintf("%d ta", len(files))
	}
	return fmt.Sprintf(`📋 Buyurtma: %s

Xizmat turi: %s
Kompaniya: %s
Izoh: %s
O'lcham: %s
Manzil: %s
Muddat: %s
Budjet: %s

👤 Mijoz: %s
📞 Telefon: %s
📎 Fayllar: %s

Status: %s
Yaratilgan: %s`,
		order.ID, order.ServiceType, order.CompanyName, order.Description,
		order.SizeFormat, order.Address, order.Deadline, order.BudgetRange,
		order.UserName, order.Phone, filesLabel,
		order.Status, order.CreatedAt.Format("2006-01-02 15:04"))
}

func formatOrderStatus(order *models.Order) string {
	return fmt.Sprintf(`Buyurtma: %s

Xizmat turi: %s
Kompaniya: %s
Status: %s

Qo'shimcha savollar bo'lsa, "📞 Bog'lanish" bo'limidan murojaat qilishingiz mumkin.`,
		order.ID, order.ServiceType, order.CompanyName, order.Status)
}

func formatNewOrderAdmin(order *models.Order) string {
	return fmt.Sprintf(`🆕 Yangi buyurtma!

ID: %s
Xizmat turi: %s
Kompaniya: %s
Izoh: %s
O'lcham: %s
Manzil: %s
Muddat: %s
Budjet: %s
Ism: %s
Telefon: %s

Status: %s
Statusni /open_%s komandasi orqali o'zgartiring.`,
		order.ID, order.ServiceType, order.CompanyName, order.Description,
		order.SizeFormat, order.Address, order.Deadline, order.BudgetRange,
		order.UserName, order.Phone, order.Status, order.ID)
}

func formatOrderListItem(order *models.Order) string {
	return fmt.Sprintf(`ID: %s
Ism: %s
Xizmat: %s
Status: %s
/open_%s`, order.ID, order.UserName, order.ServiceType, order.Status, order.ID)
}

func formatQuestionAlert(username, fullName, question string) string {
	if username == "" {
		username = "N/A"
	} else {
		username = "@" + username
	}
	return fmt.Sprintf(`✉️ Yangi savol botdan:
User: %s / %s
Matn: %s`, username, fullName, question)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
