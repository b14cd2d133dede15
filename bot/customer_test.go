package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/services"
)

const (
	testCustomerID = int64(42)
	testAdminID    = int64(900)
)

type customerFixture struct {
	engine    *CustomerEngine
	sender    *services.MockSender
	sessions  *SessionStore
	orders    *services.OrderService
	catalog   *services.CatalogService
	questions *services.QuestionService
	archive   *services.MockArchiveService
}

func setupCustomerEngine(t *testing.T) *customerFixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{}, &models.User{}, &models.Service{},
		&models.PortfolioCategory{}, &models.PortfolioItem{},
		&models.Setting{}, &models.Admin{}, &models.UserQuestion{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	sender := services.NewMockSender()
	sessions := NewSessionStore()
	orders := services.NewOrderService(db)
	users := services.NewUserService(db)
	catalog := services.NewCatalogService(db)
	settings := services.NewSettingsService(db, services.DefaultSettings(config.ContactInfo{
		Phone1:   "+998 90 000 00 00",
		Telegram: "@milliybrend",
	}))
	questions := services.NewQuestionService(db)
	admins := services.NewAdminService(db)
	policy := services.NewAccessPolicy([]int64{testAdminID}, testAdminID, admins)
	archive := services.NewMockArchiveService()

	require.NoError(t, catalog.SeedDefaults())

	engine := NewCustomerEngine(sessions, sender, orders, catalog, settings, questions, users, policy, archive)
	return &customerFixture{
		engine:    engine,
		sender:    sender,
		sessions:  sessions,
		orders:    orders,
		catalog:   catalog,
		questions: questions,
		archive:   archive,
	}
}

func textEvent(userID int64, text string) Event {
	return Event{Kind: EventText, UserID: userID, ChatID: userID, Text: text}
}

func commandEvent(userID int64, command string) Event {
	return Event{Kind: EventCommand, UserID: userID, ChatID: userID, Command: command, Text: "/" + command}
}

func callbackEvent(userID int64, data string) Event {
	return Event{Kind: EventCallback, UserID: userID, ChatID: userID, CallbackID: "cb-" + data, CallbackData: data}
}

func TestOrderIntakeFlow(t *testing.T) {
	f := setupCustomerEngine(t)

	f.engine.Handle(commandEvent(testCustomerID, "start"))
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, "Assalomu alaykum")

	f.engine.Handle(textEvent(testCustomerID, menuPlaceOrder))
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, textSelectService)

	active, err := f.catalog.ActiveServices()
	require.NoError(t, err)
	require.NotEmpty(t, active)

	f.engine.Handle(callbackEvent(testCustomerID, active[0].CallbackID))
	f.engine.Handle(textEvent(testCustomerID, "Milliy Trade"))
	f.engine.Handle(textEvent(testCustomerID, "Do'kon uchun tashqi banner"))
	f.engine.Handle(textEvent(testCustomerID, "4x6 metr"))
	f.engine.Handle(textEvent(testCustomerID, "Toshkent, Chilonzor"))
	f.engine.Handle(textEvent(testCustomerID, "10 kun ichida"))
	f.engine.Handle(callbackEvent(testCustomerID, "budget_1_3m"))
	f.engine.Handle(callbackEvent(testCustomerID, "no_file"))
	f.engine.Handle(textEvent(testCustomerID, "Aziz Karimov"))
	f.engine.Handle(textEvent(testCustomerID, "+998901234567"))

	// The summary is shown before confirmation.
	summary := f.sender.LastMessageTo(testCustomerID).Text
	assert.Contains(t, summary, "Milliy Trade")
	assert.Contains(t, summary, "+998901234567")

	f.engine.Handle(callbackEvent(testCustomerID, "confirm_order"))

	order, err := f.orders.GetByID("MBR-1001")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, testCustomerID, order.UserID)
	assert.Equal(t, "Milliy Trade", order.CompanyName)
	assert.Equal(t, "Do'kon uchun tashqi banner", order.Description)
	assert.Equal(t, "4x6 metr", order.SizeFormat)
	assert.Equal(t, "Toshkent, Chilonzor", order.Address)
	assert.Equal(t, "10 kun ichida", order.Deadline)
	assert.Equal(t, "💵 1 000 000 – 3 000 000", order.BudgetRange)
	assert.Equal(t, "Aziz Karimov", order.UserName)
	assert.Equal(t, "+998901234567", order.Phone)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, "[]", order.Files)

	// The customer gets the confirmation and the admin gets the alert.
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, "MBR-1001")
	adminAlert := f.sender.LastMessageTo(testAdminID)
	require.NotNil(t, adminAlert)
	assert.Contains(t, adminAlert.Text, "MBR-1001")
	assert.Contains(t, adminAlert.Text, "/open_MBR-1001")

	// Session is cleared after confirmation.
	assert.False(t, f.sessions.Has(testCustomerID))
}

func TestOrderIntakeWithAttachment(t *testing.T) {
	f := setupCustomerEngine(t)

	active, err := f.catalog.ActiveServices()
	require.NoError(t, err)

	f.engine.Handle(textEvent(testCustomerID, menuPlaceOrder))
	f.engine.Handle(callbackEvent(testCustomerID, active[0].CallbackID))
	f.engine.Handle(textEvent(testCustomerID, "Milliy Trade"))
	f.engine.Handle(textEvent(testCustomerID, "Banner"))
	f.engine.Handle(textEvent(testCustomerID, "4x6"))
	f.engine.Handle(textEvent(testCustomerID, "Toshkent"))
	f.engine.Handle(textEvent(testCustomerID, "tezroq"))
	f.engine.Handle(callbackEvent(testCustomerID, "budget_kelishamiz"))

	f.engine.Handle(Event{Kind: EventPhoto, UserID: testCustomerID, ChatID: testCustomerID, FileID: "photo-1"})
	f.engine.Handle(textEvent(testCustomerID, "Aziz"))
	f.engine.Handle(Event{Kind: EventContact, UserID: testCustomerID, ChatID: testCustomerID, Phone: "+998900000000"})
	f.engine.Handle(callbackEvent(testCustomerID, "confirm_order"))

	order, err := f.orders.GetByID("MBR-1001")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "+998900000000", order.Phone)

	refs := order.FileRefs()
	require.Len(t, refs, 1)
	assert.Equal(t, "photo", refs[0].Type)
	assert.Equal(t, "photo-1", refs[0].FileID)

	// Attachments were handed to the archive.
	assert.Len(t, f.archive.Archived("MBR-1001"), 1)
}

func TestBudgetCallbackIgnoredOutsideIntake(t *testing.T) {
	f := setupCustomerEngine(t)

	f.engine.Handle(callbackEvent(testCustomerID, "budget_1m"))
	assert.Empty(t, f.sender.MessagesTo(testCustomerID))
}

func TestOrderStatusLookup(t *testing.T) {
	f := setupCustomerEngine(t)

	require.NoError(t, f.orders.Create(&models.Order{
		ID:     "MBR-1001",
		UserID: testCustomerID,
		Status: models.StatusInDesign,
	}))

	f.engine.Handle(textEvent(testCustomerID, menuOrderStatus))
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, textAskOrderID)

	// Lowercase input is normalized before lookup.
	f.engine.Handle(textEvent(testCustomerID, "mbr-1001"))
	last := f.sender.LastMessageTo(testCustomerID)
	assert.Contains(t, last.Text, "MBR-1001")
	assert.Contains(t, last.Text, models.StatusInDesign)
}

func TestOrderStatusLookupRejectsBadID(t *testing.T) {
	f := setupCustomerEngine(t)

	f.engine.Handle(textEvent(testCustomerID, menuOrderStatus))
	f.engine.Handle(textEvent(testCustomerID, "1001"))
	assert.Equal(t, textBadOrderID, f.sender.LastMessageTo(testCustomerID).Text)
}

func TestQuestionFlow(t *testing.T) {
	f := setupCustomerEngine(t)

	f.engine.Handle(textEvent(testCustomerID, menuContact))
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, "+998 90 000 00 00")

	f.engine.Handle(textEvent(testCustomerID, "Logo dizayni qancha turadi?"))

	// Customer gets the acknowledgement, admin gets the alert with a reply
	// button.
	assert.Contains(t, f.sender.LastMessageTo(testCustomerID).Text, "Savolingiz qabul qilindi")
	adminAlert := f.sender.LastMessageTo(testAdminID)
	require.NotNil(t, adminAlert)
	assert.Contains(t, adminAlert.Text, "Logo dizayni qancha turadi?")
	assert.NotNil(t, adminAlert.Keyboard)

	question, err := f.questions.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.False(t, question.Replied)
}

func TestPortfolioPhotoDegradesToText(t *testing.T) {
	f := setupCustomerEngine(t)

	category, err := f.catalog.AddCategory("📌", "Banner ishlari")
	require.NoError(t, err)
	photoID := "stale-photo"
	_, err = f.catalog.AddItem(category.CallbackID, "Supermarket banneri", "4x6 metr", &photoID)
	require.NoError(t, err)

	f.sender.FailPhotosFor(testCustomerID)
	f.engine.Handle(callbackEvent(testCustomerID, category.CallbackID))

	// The item still arrives, as text.
	last := f.sender.LastMessageTo(testCustomerID)
	require.NotNil(t, last)
	assert.Empty(t, last.PhotoID)
	assert.Contains(t, last.Text, "Supermarket banneri")
}

func TestStartClearsSession(t *testing.T) {
	f := setupCustomerEngine(t)

	active, err := f.catalog.ActiveServices()
	require.NoError(t, err)

	f.engine.Handle(textEvent(testCustomerID, menuPlaceOrder))
	f.engine.Handle(callbackEvent(testCustomerID, active[0].CallbackID))
	require.True(t, f.sessions.Has(testCustomerID))

	f.engine.Handle(commandEvent(testCustomerID, "start"))
	assert.False(t, f.sessions.Has(testCustomerID))
}
