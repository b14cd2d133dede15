package bot

import (
	"fmt"
	"log"

	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/services"
	"github.com/milliybrend/reklama-bot/utils"
)

// CustomerEngine drives the customer-facing conversation: the order-intake
// pipeline, portfolio browsing, status lookup and question submission.
type CustomerEngine struct {
	sessions  *SessionStore
	sender    services.Sender
	orders    *services.OrderService
	catalog   *services.CatalogService
	settings  *services.SettingsService
	questions *services.QuestionService
	users     *services.UserService
	policy    *services.AccessPolicy
	archive   services.ArchiveInterface // nil disables attachment archiving
}

// NewCustomerEngine wires a customer engine. The session store is injected so
// tests can run isolated instances.
func NewCustomerEngine(
	sessions *SessionStore,
	sender services.Sender,
	orders *services.OrderService,
	catalog *services.CatalogService,
	settings *services.SettingsService,
	questions *services.QuestionService,
	users *services.UserService,
	policy *services.AccessPolicy,
	archive services.ArchiveInterface,
) *CustomerEngine {
	return &CustomerEngine{
		sessions:  sessions,
		sender:    sender,
		orders:    orders,
		catalog:   catalog,
		settings:  settings,
		questions: questions,
		users:     users,
		policy:    policy,
		archive:   archive,
	}
}

// Handle processes one inbound event for a customer.
func (e *CustomerEngine) Handle(ev Event) {
	switch ev.Kind {
	case EventCommand:
		e.handleCommand(ev)
	case EventCallback:
		e.handleCallback(ev)
	case EventPhoto, EventDocument:
		e.handleFile(ev)
	case EventContact:
		e.handleContact(ev)
	case EventText:
		e.handleText(ev)
	}
}

func (e *CustomerEngine) handleCommand(ev Event) {
	if ev.Command != "start" {
		return
	}
	if err := e.users.Save(ev.UserID, ev.Username, ev.FullName); err != nil {
		log.Printf("failed to register user %d: %v", ev.UserID, err)
	}
	e.sessions.Clear(ev.UserID)
	e.reply(ev, textWelcome, mainMenuKeyboard())
}

func (e *CustomerEngine) handleCallback(ev Event) {
	session := e.sessions.Get(ev.UserID)
	cb := DecodeCallback(ev.CallbackData)

	switch cb.Kind {
	case CallbackService:
		service, err := e.catalog.ServiceByCallbackID(cb.Token)
		if err != nil {
			log.Printf("service lookup failed: %v", err)
			return
		}
		if service == nil {
			e.ack(ev, textNoServices)
			return
		}
		session.Draft = models.Order{UserID: ev.UserID}
		session.Draft.ServiceType = fmt.Sprintf("%s %s", service.Emoji, service.Name)
		session.DraftFiles = nil
		session.Step = StepAskCompany
		e.ack(ev, "")
		e.reply(ev, textAskCompanyName, nil)

	case CallbackBudget:
		budget, ok := budgetLabels[cb.Token]
		if ok && session.Step == StepAskBudget {
			session.Draft.BudgetRange = budget
			session.Step = StepAskFile
			e.ack(ev, "")
			e.reply(ev, textAskFile, fileUploadKeyboard())
		}

	case CallbackNoFile:
		if session.Step == StepAskFile {
			session.DraftFiles = []models.FileRef{}
			session.Step = StepAskName
			e.ack(ev, "")
			e.reply(ev, textAskName, nil)
		}

	case CallbackConfirmOrder:
		if session.Step == StepConfirm {
			e.ack(ev, "")
			e.finalizeOrder(ev, session)
		}

	case CallbackEditOrder, CallbackStartOrder:
		e.ack(ev, "")
		e.startOrder(ev, session)

	case CallbackBackMain:
		e.sessions.Clear(ev.UserID)
		e.ack(ev, "")
		e.reply(ev, textMainMenu, mainMenuKeyboard())

	case CallbackPortfolio:
		e.ack(ev, "")
		e.showPortfolio(ev, cb.Token)
	}
}

func (e *CustomerEngine) handleFile(ev Event) {
	session := e.sessions.Get(ev.UserID)
	if session.Step != StepAskFile {
		return
	}
	kind := "document"
	received := textFileReceived
	if ev.Kind == EventPhoto {
		kind = "photo"
		received = textPhotoReceived
	}
	// Files accumulate; a second upload in the same intake appends.
	session.DraftFiles = append(session.DraftFiles, models.FileRef{Type: kind, FileID: ev.FileID})
	session.Step = StepAskName
	e.reply(ev, received, nil)
}

func (e *CustomerEngine) handleContact(ev Event) {
	session := e.sessions.Get(ev.UserID)
	if session.Step != StepAskPhone {
		return
	}
	session.Draft.Phone = ev.Phone
	session.Step = StepConfirm
	e.reply(ev, formatOrderSummary(&session.Draft), confirmOrderKeyboard())
}

func (e *CustomerEngine) handleText(ev Event) {
	session := e.sessions.Get(ev.UserID)

	switch ev.Text {
	case menuPlaceOrder:
		e.startOrder(ev, session)
		return
	case menuPortfolio:
		e.sessions.Clear(ev.UserID)
		categories, err := e.catalog.ActiveCategories()
		if err != nil {
			log.Printf("failed to list portfolio categories: %v", err)
			return
		}
		e.reply(ev, textPortfolioSelect, portfolioCategoriesKeyboard(categories))
		return
	case menuOrderStatus:
		session.AwaitingOrderID = true
		session.AwaitingQuestion = false
		e.reply(ev, textAskOrderID, nil)
		return
	case menuContact:
		session.AwaitingQuestion = true
		session.AwaitingOrderID = false
		e.reply(ev, e.contactText(), nil)
		return
	case menuAbout:
		e.sessions.Clear(ev.UserID)
		e.reply(ev, e.aboutText(), portfolioBackKeyboard())
		return
	}

	if session.AwaitingOrderID {
		session.AwaitingOrderID = false
		e.lookupOrder(ev)
		return
	}

	if session.AwaitingQuestion {
		session.AwaitingQuestion = false
		e.submitQuestion(ev)
		return
	}

	e.advanceStep(ev, session)
}

// advanceStep maps one free-text reply onto the current intake field and
// moves one step forward.
func (e *CustomerEngine) advanceStep(ev Event, session *Session) {
	switch session.Step {
	case StepAskCompany:
		session.Draft.CompanyName = ev.Text
		session.Step = StepAskDescription
		e.reply(ev, textAskDescription, nil)
	case StepAskDescription:
		session.Draft.Description = ev.Text
		session.Step = StepAskSize
		e.reply(ev, textAskSize, nil)
	case StepAskSize:
		session.Draft.SizeFormat = ev.Text
		session.Step = StepAskAddress
		e.reply(ev, textAskAddress, nil)
	case StepAskAddress:
		session.Draft.Address = ev.Text
		session.Step = StepAskDeadline
		e.reply(ev, textAskDeadline, nil)
	case StepAskDeadline:
		session.Draft.Deadline = ev.Text
		session.Step = StepAskBudget
		e.reply(ev, textAskBudget, budgetKeyboard())
	case StepAskName:
		session.Draft.UserName = ev.Text
		session.Step = StepAskPhone
		e.reply(ev, textAskPhone, phoneRequestKeyboard())
	case StepAskPhone:
		// Typed phone numbers are accepted alongside the contact button.
		session.Draft.Phone = ev.Text
		session.Step = StepConfirm
		e.reply(ev, formatOrderSummary(&session.Draft), confirmOrderKeyboard())
	}
}

// startOrder begins (or restarts) the intake with a fresh draft.
func (e *CustomerEngine) startOrder(ev Event, session *Session) {
	active, err := e.catalog.ActiveServices()
	if err != nil {
		log.Printf("failed to list services: %v", err)
		return
	}
	if len(active) == 0 {
		session.Step = StepIdle
		e.reply(ev, textNoServices, mainMenuKeyboard())
		return
	}
	session.Step = StepSelectService
	session.Draft = models.Order{UserID: ev.UserID}
	session.DraftFiles = nil
	e.reply(ev, textSelectService, serviceKeyboard(active))
}

// finalizeOrder persists the draft, notifies the admins and clears the
// session. Admin notification and archiving are best-effort; the order is
// already committed when they run.
func (e *CustomerEngine) finalizeOrder(ev Event, session *Session) {
	orderID, err := e.orders.NextOrderID()
	if err != nil {
		log.Printf("failed to generate order id: %v", err)
		return
	}

	order := session.Draft
	order.ID = orderID
	order.UserID = ev.UserID
	order.Status = models.StatusNew
	order.Files = models.EncodeFileRefs(session.DraftFiles)

	if err := e.orders.Create(&order); err != nil {
		log.Printf("failed to persist order %s: %v", orderID, err)
		return
	}

	files := session.DraftFiles
	e.sessions.Clear(ev.UserID)
	e.reply(ev, textOrderSuccess(orderID), mainMenuKeyboard())

	services.Fanout(e.sender, e.policy.AllAdminIDs(), formatNewOrderAdmin(&order), nil)

	if e.archive != nil && len(files) > 0 {
		keys, err := e.archive.ArchiveOrderFiles(orderID, files)
		if err != nil {
			log.Printf("failed to archive attachments of %s: %v", orderID, err)
		} else if len(keys) > 0 {
			if err := e.orders.SetArchiveKeys(orderID, keys); err != nil {
				log.Printf("failed to record archive keys of %s: %v", orderID, err)
			}
		}
	}
}

func (e *CustomerEngine) lookupOrder(ev Event) {
	orderID, ok := utils.NormalizeOrderID(ev.Text)
	if !ok {
		e.reply(ev, textBadOrderID, nil)
		return
	}
	e.reply(ev, textCheckingOrder, nil)

	order, err := e.orders.GetByID(orderID)
	if err != nil {
		log.Printf("order lookup failed: %v", err)
		return
	}
	if order == nil {
		e.reply(ev, textOrderNotFound, mainMenuKeyboard())
		return
	}
	e.reply(ev, formatOrderStatus(order), mainMenuKeyboard())
}

func (e *CustomerEngine) submitQuestion(ev Event) {
	question, err := e.questions.Save(ev.UserID, ev.Username, ev.FullName, ev.Text)
	if err != nil {
		log.Printf("failed to save question: %v", err)
		return
	}
	alert := formatQuestionAlert(ev.Username, ev.FullName, ev.Text)
	services.Fanout(e.sender, e.policy.AllAdminIDs(), alert, replyQuestionKeyboard(question.ID))
	e.reply(ev, textQuestionReceived, mainMenuKeyboard())
}

func (e *CustomerEngine) showPortfolio(ev Event, categoryToken string) {
	items, err := e.catalog.ItemsByCategory(categoryToken)
	if err != nil {
		log.Printf("failed to list portfolio items: %v", err)
		return
	}
	if len(items) == 0 {
		e.reply(ev, textPortfolioEmpty, portfolioBackKeyboard())
		return
	}
	for _, item := range items {
		caption := textPortfolioItem(item.Title, item.Description)
		if item.PhotoID != nil {
			if err := e.sender.SendPhoto(ev.ChatID, *item.PhotoID, caption, portfolioBackKeyboard()); err == nil {
				continue
			}
			// Stale file id or blocked media; fall back to text.
		}
		e.reply(ev, caption, portfolioBackKeyboard())
	}
}

func (e *CustomerEngine) contactText() string {
	return textContact(
		e.settings.Get(services.SettingPhone1),
		e.settings.Get(services.SettingPhone2),
		e.settings.Get(services.SettingTelegram),
		e.settings.Get(services.SettingAddress),
	)
}

func (e *CustomerEngine) aboutText() string {
	about := e.settings.Get(services.SettingAbout)
	if about == "" {
		about = services.DefaultAboutText
	}
	return about
}

func (e *CustomerEngine) reply(ev Event, text string, keyboard interface{}) {
	if err := e.sender.SendMessage(ev.ChatID, text, keyboard); err != nil {
		log.Printf("failed to reply to %d: %v", ev.ChatID, err)
	}
}

func (e *CustomerEngine) ack(ev Event, text string) {
	if err := e.sender.AnswerCallback(ev.CallbackID, text); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}
