package bot

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/services"
	"github.com/milliybrend/reklama-bot/utils"
)

// AdminEngine drives the administration conversation: order triage, status
// changes, broadcast composition, catalog/settings editing and worker
// administration. Handle reports whether it consumed the event; unconsumed
// events fall through to the customer engine, so admins can also place orders.
type AdminEngine struct {
	sessions  *AdminSessionStore
	sender    services.Sender
	orders    *services.OrderService
	catalog   *services.CatalogService
	settings  *services.SettingsService
	questions *services.QuestionService
	users     *services.UserService
	admins    *services.AdminService
	policy    *services.AccessPolicy
}

// NewAdminEngine wires an admin engine with an injected session store.
func NewAdminEngine(
	sessions *AdminSessionStore,
	sender services.Sender,
	orders *services.OrderService,
	catalog *services.CatalogService,
	settings *services.SettingsService,
	questions *services.QuestionService,
	users *services.UserService,
	admins *services.AdminService,
	policy *services.AccessPolicy,
) *AdminEngine {
	return &AdminEngine{
		sessions:  sessions,
		sender:    sender,
		orders:    orders,
		catalog:   catalog,
		settings:  settings,
		questions: questions,
		users:     users,
		admins:    admins,
		policy:    policy,
	}
}

// Handle processes one inbound event, returning true when it was consumed.
func (e *AdminEngine) Handle(ev Event) bool {
	switch ev.Kind {
	case EventCommand:
		return e.handleCommand(ev)
	case EventCallback:
		return e.handleCallback(ev)
	case EventText:
		return e.handleText(ev)
	case EventPhoto:
		return e.handlePhoto(ev)
	}
	return false
}

func (e *AdminEngine) handleCommand(ev Event) bool {
	switch {
	case ev.Command == "admin":
		// No session is created or touched for non-admins.
		if !e.policy.IsAdmin(ev.UserID) {
			e.reply(ev, textNotAdmin, nil)
			return true
		}
		e.sessions.Clear(ev.UserID)
		e.reply(ev, textAdminPanel, adminMenuKeyboard(e.policy.IsSuperAdmin(ev.UserID)))
		return true

	case strings.HasPrefix(strings.ToLower(ev.Command), "open_"):
		if !e.policy.IsAdmin(ev.UserID) {
			return true // silently ignored for customers
		}
		raw := ev.Command[len("open_"):]
		orderID, ok := utils.NormalizeOrderID(raw)
		if !ok {
			e.reply(ev, textBadOrderID, nil)
			return true
		}
		e.openOrder(ev, orderID)
		return true
	}
	return false
}

func (e *AdminEngine) handleCallback(ev Event) bool {
	cb := DecodeCallback(ev.CallbackData)
	if !isAdminCallback(cb.Kind) {
		return false
	}
	if !e.policy.IsAdmin(ev.UserID) {
		e.ack(ev, textNotAdmin)
		return true
	}
	if requiresSuperAdmin(cb.Kind) && !e.policy.IsSuperAdmin(ev.UserID) {
		e.ack(ev, textNotSuperAdmin)
		return true
	}

	session := e.sessions.Get(ev.UserID)

	switch cb.Kind {
	case CallbackAdminOrders:
		e.ack(ev, "")
		e.listOrders(ev, false)

	case CallbackAdminNewOrders:
		e.ack(ev, "")
		e.listOrders(ev, true)

	case CallbackAdminSearch:
		session.Reset()
		session.Arm(AwaitSearch)
		e.ack(ev, "")
		e.reply(ev, textSearchPrompt, nil)

	case CallbackAdminChangeStatus:
		session.Reset()
		session.Arm(AwaitStatusOrderID)
		e.ack(ev, "")
		e.reply(ev, textStatusOrderIDPrompt, nil)

	case CallbackAdminBroadcast:
		session.Reset()
		session.Arm(AwaitBroadcastMessage)
		e.ack(ev, "")
		e.reply(ev, textBroadcastAsk, nil)

	case CallbackAdminCatalog:
		session.Reset()
		e.ack(ev, "")
		e.reply(ev, textCatalogMenu, catalogMenuKeyboard())

	case CallbackAdminSettings:
		session.Reset()
		e.ack(ev, "")
		e.reply(ev, textSettingsMenu, settingsMenuKeyboard())

	case CallbackAdminWorkers:
		session.Reset()
		e.ack(ev, "")
		e.showWorkers(ev)

	case CallbackAdminBack:
		session.Reset()
		e.ack(ev, "")
		e.reply(ev, textAdminPanel, adminMenuKeyboard(e.policy.IsSuperAdmin(ev.UserID)))

	case CallbackStatus:
		e.changeStatus(ev, cb.OrderID, cb.Status)

	case CallbackBroadcastConfirm:
		e.confirmBroadcast(ev, session)

	case CallbackBroadcastCancel:
		session.Reset()
		e.ack(ev, "")
		e.reply(ev, textBroadcastCancelled, adminMenuKeyboard(e.policy.IsSuperAdmin(ev.UserID)))

	case CallbackCatalogAddService:
		session.Reset()
		session.Arm(AwaitServiceName)
		e.ack(ev, "")
		e.reply(ev, textAddServicePrompt, nil)

	case CallbackCatalogDelService:
		e.ack(ev, "")
		e.showDeletableServices(ev)

	case CallbackCatalogAddCategory:
		session.Reset()
		session.Arm(AwaitCategoryName)
		e.ack(ev, "")
		e.reply(ev, textAddCategoryPrompt, nil)

	case CallbackCatalogDelCategory:
		e.ack(ev, "")
		e.showDeletableCategories(ev)

	case CallbackCatalogAddItem:
		session.Reset()
		e.ack(ev, "")
		e.startItemAdd(ev)

	case CallbackCatalogDelItem:
		e.ack(ev, "")
		e.showDeletableItems(ev)

	case CallbackItemCategory:
		session.ItemCategory = cb.Token
		session.Arm(AwaitItemTitle)
		e.ack(ev, "")
		e.reply(ev, textAddItemTitlePrompt, nil)

	case CallbackDeleteService:
		e.deleteRow(ev, func() (bool, error) { return e.catalog.DeleteService(cb.RowID) })

	case CallbackDeleteCategory:
		e.deleteRow(ev, func() (bool, error) { return e.catalog.DeleteCategory(cb.RowID) })

	case CallbackDeleteItem:
		e.deleteRow(ev, func() (bool, error) { return e.catalog.DeleteItem(cb.RowID) })

	case CallbackSetting:
		session.Reset()
		session.SettingKey = cb.SettingKey
		session.Arm(AwaitSettingValue)
		e.ack(ev, "")
		e.reply(ev, textSettingPrompt, nil)

	case CallbackWorkerAdd:
		session.Reset()
		session.Arm(AwaitWorkerID)
		e.ack(ev, "")
		e.reply(ev, textWorkerAddPrompt, nil)

	case CallbackWorkerRemove:
		e.removeWorker(ev, cb.WorkerID)

	case CallbackReplyQuestion:
		e.startQuestionReply(ev, session, cb.RowID)
	}

	return true
}

// handleText consumes free text only while an awaiting state is armed. The
// switch is ordered most-specific-first; with a single enum only one state
// can hold at a time, but the ordering is kept deterministic regardless.
func (e *AdminEngine) handleText(ev Event) bool {
	if !e.policy.IsAdmin(ev.UserID) {
		return false
	}
	session := e.sessions.Get(ev.UserID)

	switch session.Await {
	case AwaitQuestionReply:
		session.Arm(AwaitNone)
		e.relayQuestionReply(ev, session)
	case AwaitSearch:
		session.Arm(AwaitNone)
		e.searchOrders(ev)
	case AwaitStatusOrderID:
		session.Arm(AwaitNone)
		e.promptStatusChange(ev)
	case AwaitBroadcastMessage:
		session.BroadcastMessage = ev.Text
		session.Arm(AwaitBroadcastButtons)
		e.reply(ev, textBroadcastButtonsAsk, nil)
	case AwaitBroadcastButtons:
		e.collectBroadcastButtons(ev, session)
	case AwaitServiceName:
		session.Arm(AwaitNone)
		emoji, name := splitEmojiName(ev.Text, "🔹")
		if _, err := e.catalog.AddService(emoji, name); err != nil {
			log.Printf("failed to add service: %v", err)
			return true
		}
		e.reply(ev, textServiceAdded, catalogMenuKeyboard())
	case AwaitCategoryName:
		session.Arm(AwaitNone)
		emoji, name := splitEmojiName(ev.Text, "📌")
		if _, err := e.catalog.AddCategory(emoji, name); err != nil {
			log.Printf("failed to add category: %v", err)
			return true
		}
		e.reply(ev, textCategoryAdded, catalogMenuKeyboard())
	case AwaitItemTitle:
		session.ItemTitle = ev.Text
		session.Arm(AwaitItemDescription)
		e.reply(ev, textAddItemDescriptionPrompt, nil)
	case AwaitItemDescription:
		session.ItemDescription = ev.Text
		session.Arm(AwaitItemPhoto)
		e.reply(ev, textAddItemPhotoPrompt, nil)
	case AwaitItemPhoto:
		if !noPhotoTokens[strings.ToLower(strings.TrimSpace(ev.Text))] {
			e.reply(ev, textAddItemPhotoPrompt, nil)
			return true
		}
		e.saveItem(ev, session, nil)
	case AwaitSettingValue:
		key := session.SettingKey
		session.Reset()
		if err := e.settings.Set(key, ev.Text); err != nil {
			log.Printf("failed to save setting %q: %v", key, err)
			return true
		}
		e.reply(ev, textSettingSaved, settingsMenuKeyboard())
	case AwaitWorkerID:
		e.addWorker(ev, session)
	default:
		return false
	}
	return true
}

func (e *AdminEngine) handlePhoto(ev Event) bool {
	if !e.policy.IsAdmin(ev.UserID) {
		return false
	}
	session := e.sessions.Get(ev.UserID)
	if session.Await != AwaitItemPhoto {
		return false
	}
	photoID := ev.FileID
	e.saveItem(ev, session, &photoID)
	return true
}

func (e *AdminEngine) listOrders(ev Event, newOnly bool) {
	var (
		orders []models.Order
		err    error
	)
	header := textRecentOrdersHeader
	if newOnly {
		header = textNewOrdersHeader
		orders, err = e.orders.ListNew(10)
	} else {
		orders, err = e.orders.ListRecent(10)
	}
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		return
	}
	if len(orders) == 0 {
		e.reply(ev, textNoOrders, nil)
		return
	}
	e.reply(ev, header, nil)
	for i := range orders {
		e.reply(ev, formatOrderListItem(&orders[i]), nil)
	}
}

func (e *AdminEngine) openOrder(ev Event, orderID string) {
	order, err := e.orders.GetByID(orderID)
	if err != nil {
		log.Printf("failed to open order %s: %v", orderID, err)
		return
	}
	if order == nil {
		e.reply(ev, textOrderNotFoundByID(orderID), nil)
		return
	}
	e.reply(ev, formatOrderDetails(order), statusKeyboard(order.ID))
}

func (e *AdminEngine) changeStatus(ev Event, orderID, status string) {
	order, err := e.orders.GetByID(orderID)
	if err != nil {
		log.Printf("failed to load order %s: %v", orderID, err)
		return
	}
	if order == nil {
		e.ack(ev, "Buyurtma topilmadi!")
		return
	}

	updated, err := e.orders.UpdateStatus(orderID, status)
	if err != nil || !updated {
		e.ack(ev, "Xatolik yuz berdi!")
		return
	}

	e.ack(ev, "Status o'zgartirildi ✅")
	e.reply(ev, textStatusChanged(orderID, status), nil)

	if err := e.sender.SendMessage(order.UserID, textUserStatusNotification(orderID, status), nil); err != nil {
		log.Printf("failed to notify customer %d: %v", order.UserID, err)
	}
}

func (e *AdminEngine) searchOrders(ev Event) {
	results, err := e.orders.Search(ev.Text)
	if err != nil {
		log.Printf("order search failed: %v", err)
		return
	}
	if len(results) == 0 {
		e.reply(ev, textSearchEmpty, nil)
		return
	}
	e.reply(ev, textSearchResults(len(results)), nil)
	for i := range results {
		e.reply(ev, formatOrderListItem(&results[i]), nil)
	}
}

func (e *AdminEngine) promptStatusChange(ev Event) {
	orderID, ok := utils.NormalizeOrderID(ev.Text)
	if !ok {
		e.reply(ev, textBadOrderID, nil)
		return
	}
	order, err := e.orders.GetByID(orderID)
	if err != nil {
		log.Printf("failed to load order %s: %v", orderID, err)
		return
	}
	if order == nil {
		e.reply(ev, textAdminOrderNotFound, nil)
		return
	}
	e.reply(ev, textStatusSelectPrompt(order.ID, order.Status), statusKeyboard(order.ID))
}

func (e *AdminEngine) collectBroadcastButtons(ev Event, session *AdminSession) {
	if doneTokens[strings.ToLower(strings.TrimSpace(ev.Text))] {
		session.Arm(AwaitNone)
		e.reply(ev, textBroadcastPreview(session.BroadcastMessage, len(session.BroadcastButtons)), broadcastConfirmKeyboard())
		return
	}
	specs, err := utils.ParseButtonLines(ev.Text)
	if err != nil {
		// Leave the state armed; the admin fixes the line and retries.
		e.reply(ev, err.Error(), nil)
		return
	}
	session.BroadcastButtons = append(session.BroadcastButtons, specs...)
	e.reply(ev, textButtonsAdded, nil)
}

func (e *AdminEngine) confirmBroadcast(ev Event, session *AdminSession) {
	if session.BroadcastMessage == "" {
		e.ack(ev, textBroadcastMissing)
		return
	}
	e.ack(ev, "")

	recipients, err := e.users.AllUserIDs()
	if err != nil {
		log.Printf("failed to list broadcast recipients: %v", err)
		return
	}
	message := session.BroadcastMessage
	keyboard := broadcastKeyboard(session.BroadcastButtons)
	session.Reset()

	count := services.Fanout(e.sender, recipients, message, keyboard)
	e.reply(ev, textBroadcastSent(count), adminMenuKeyboard(e.policy.IsSuperAdmin(ev.UserID)))
}

func (e *AdminEngine) showDeletableServices(ev Event) {
	all, err := e.catalog.AllServices()
	if err != nil {
		log.Printf("failed to list services: %v", err)
		return
	}
	if len(all) == 0 {
		e.reply(ev, textNothingToDelete, catalogMenuKeyboard())
		return
	}
	e.reply(ev, textCatalogMenu, deleteServicesKeyboard(all))
}

func (e *AdminEngine) showDeletableCategories(ev Event) {
	all, err := e.catalog.AllCategories()
	if err != nil {
		log.Printf("failed to list categories: %v", err)
		return
	}
	if len(all) == 0 {
		e.reply(ev, textNothingToDelete, catalogMenuKeyboard())
		return
	}
	e.reply(ev, textCatalogMenu, deleteCategoriesKeyboard(all))
}

func (e *AdminEngine) showDeletableItems(ev Event) {
	all, err := e.catalog.AllItems()
	if err != nil {
		log.Printf("failed to list portfolio items: %v", err)
		return
	}
	if len(all) == 0 {
		e.reply(ev, textNothingToDelete, catalogMenuKeyboard())
		return
	}
	e.reply(ev, textCatalogMenu, deleteItemsKeyboard(all))
}

func (e *AdminEngine) startItemAdd(ev Event) {
	categories, err := e.catalog.ActiveCategories()
	if err != nil {
		log.Printf("failed to list categories: %v", err)
		return
	}
	if len(categories) == 0 {
		e.reply(ev, textNoCategories, catalogMenuKeyboard())
		return
	}
	e.reply(ev, textAddItemCategoryPrompt, itemCategoryKeyboard(categories))
}

func (e *AdminEngine) saveItem(ev Event, session *AdminSession, photoID *string) {
	category := session.ItemCategory
	title := session.ItemTitle
	description := session.ItemDescription
	session.Reset()
	if _, err := e.catalog.AddItem(category, title, description, photoID); err != nil {
		log.Printf("failed to add portfolio item: %v", err)
		return
	}
	e.reply(ev, textItemSaved, catalogMenuKeyboard())
}

func (e *AdminEngine) deleteRow(ev Event, del func() (bool, error)) {
	deleted, err := del()
	if err != nil {
		log.Printf("delete failed: %v", err)
		e.ack(ev, "Xatolik yuz berdi!")
		return
	}
	if !deleted {
		e.ack(ev, textAlreadyDeleted)
		return
	}
	e.ack(ev, textDeleted)
	e.reply(ev, textDeleted, catalogMenuKeyboard())
}

func (e *AdminEngine) showWorkers(ev Event) {
	workers, err := e.admins.ListActiveAdmins()
	if err != nil {
		log.Printf("failed to list workers: %v", err)
		return
	}
	e.reply(ev, textWorkersMenu, workersKeyboard(workers))
}

func (e *AdminEngine) addWorker(ev Event, session *AdminSession) {
	raw := strings.TrimSpace(ev.Text)
	workerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Keep awaiting so the admin can correct the id.
		e.reply(ev, textWorkerBadID, nil)
		return
	}
	session.Arm(AwaitNone)
	if _, err := e.admins.AddWorker(workerID, "", ""); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			e.reply(ev, textWorkerExists, nil)
			return
		}
		log.Printf("failed to add worker %d: %v", workerID, err)
		return
	}
	e.reply(ev, textWorkerAdded, nil)
	e.showWorkers(ev)
}

func (e *AdminEngine) removeWorker(ev Event, workerID int64) {
	removed, err := e.admins.RemoveWorker(workerID)
	if err != nil {
		log.Printf("failed to remove worker %d: %v", workerID, err)
		e.ack(ev, "Xatolik yuz berdi!")
		return
	}
	if !removed {
		e.ack(ev, textAlreadyDeleted)
		return
	}
	e.ack(ev, textWorkerRemoved)
	e.showWorkers(ev)
}

func (e *AdminEngine) startQuestionReply(ev Event, session *AdminSession, questionID uint) {
	question, err := e.questions.GetByID(questionID)
	if err != nil {
		log.Printf("failed to load question %d: %v", questionID, err)
		return
	}
	if question == nil {
		e.ack(ev, textReplyQuestionGone)
		return
	}
	session.Reset()
	session.QuestionID = questionID
	session.Arm(AwaitQuestionReply)
	e.ack(ev, "")
	e.reply(ev, textReplyPrompt, nil)
}

func (e *AdminEngine) relayQuestionReply(ev Event, session *AdminSession) {
	questionID := session.QuestionID
	session.Reset()

	question, err := e.questions.GetByID(questionID)
	if err != nil {
		log.Printf("failed to load question %d: %v", questionID, err)
		return
	}
	if question == nil {
		e.reply(ev, textReplyQuestionGone, nil)
		return
	}

	if err := e.sender.SendMessage(question.UserID, textQuestionReply(ev.Text), nil); err != nil {
		log.Printf("failed to relay reply to %d: %v", question.UserID, err)
		e.reply(ev, textReplyFailed, nil)
		return
	}
	if _, err := e.questions.MarkReplied(questionID); err != nil {
		log.Printf("failed to mark question %d replied: %v", questionID, err)
	}
	e.reply(ev, textReplySent, nil)
}

// isAdminCallback reports whether a decoded kind belongs to the admin engine.
func isAdminCallback(kind CallbackKind) bool {
	switch kind {
	case CallbackService, CallbackBudget, CallbackNoFile, CallbackConfirmOrder,
		CallbackEditOrder, CallbackStartOrder, CallbackBackMain, CallbackPortfolio,
		CallbackUnknown:
		return false
	}
	return true
}

func requiresSuperAdmin(kind CallbackKind) bool {
	switch kind {
	case CallbackAdminWorkers, CallbackWorkerAdd, CallbackWorkerRemove:
		return true
	}
	return false
}

// splitEmojiName splits an "emoji name" one-liner; when the first token looks
// like regular text the default emoji is used and the whole input is the name.
func splitEmojiName(input, defaultEmoji string) (string, string) {
	input = strings.TrimSpace(input)
	fields := strings.Fields(input)
	if len(fields) >= 2 {
		first := []rune(fields[0])
		if len(first) > 0 && !unicode.IsLetter(first[0]) && !unicode.IsDigit(first[0]) {
			return fields[0], strings.TrimSpace(strings.TrimPrefix(input, fields[0]))
		}
	}
	return defaultEmoji, input
}

func (e *AdminEngine) reply(ev Event, text string, keyboard interface{}) {
	if err := e.sender.SendMessage(ev.ChatID, text, keyboard); err != nil {
		log.Printf("failed to reply to %d: %v", ev.ChatID, err)
	}
}

func (e *AdminEngine) ack(ev Event, text string) {
	if err := e.sender.AnswerCallback(ev.CallbackID, text); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}
