// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
	"github.com/finance-dashboard/backend/test/integration/mock"
)

type testContext struct {
	uri     string
	headers map[string]string
	client  *http.Client

	response *response
	db       *mock.Db

	userIDs           map[string]uuid.UUID
	currentUserID     uuid.UUID
	currentCardID     uuid.UUID
	currentCategoryID uuid.UUID
	lastTransactionID uuid.UUID
	transactionIDs    []uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("finance_dashboard", map[string]any{
			"credit_cards": &model.CreditCardModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Identity steps
	ctx.Given(`^I am identified as "([^"]*)"$`, test.iAmIdentifiedAs)
	ctx.Given(`^no user identity is provided$`, test.noUserIdentityIsProvided)

	// Fixture steps
	ctx.Given(`^a card exists with name "([^"]*)", limit "([^"]*)", closing day (\d+) and due day (\d+)$`, test.aCardExists)
	ctx.Given(`^a card owned by "([^"]*)" exists with name "([^"]*)", limit "([^"]*)", closing day (\d+) and due day (\d+)$`, test.aCardOwnedByExists)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a "([^"]*)" "([^"]*)" transaction of "([^"]*)" exists dated "([^"]*)"$`, test.aTransactionExistsDated)
	ctx.Given(`^a "([^"]*)" "([^"]*)" transaction of "([^"]*)" exists dated this month$`, test.aTransactionExistsDatedThisMonth)
	ctx.Given(`^a "([^"]*)" "([^"]*)" transaction of "([^"]*)" exists dated two months ago$`, test.aTransactionExistsDatedTwoMonthsAgo)

	// Request steps (setup requests appear under Given as well)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.userIDs = make(map[string]uuid.UUID)
	t.response = nil
	t.currentUserID = uuid.Nil
	t.currentCardID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.transactionIDs = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// userFor returns a stable user reference for the given alias, creating one
// on first use.
func (t *testContext) userFor(alias string) uuid.UUID {
	if id, ok := t.userIDs[alias]; ok {
		return id
	}
	id := uuid.New()
	t.userIDs[alias] = id
	return id
}

func (t *testContext) iAmIdentifiedAs(alias string) error {
	t.currentUserID = t.userFor(alias)
	t.headers[middleware.UserIDHeader] = t.currentUserID.String()
	return nil
}

func (t *testContext) noUserIdentityIsProvided() error {
	delete(t.headers, middleware.UserIDHeader)
	return nil
}

func (t *testContext) aCardExists(name, limit string, closingDay, dueDay int) error {
	return t.createCard(t.currentUserID, name, limit, closingDay, dueDay)
}

func (t *testContext) aCardOwnedByExists(owner, name, limit string, closingDay, dueDay int) error {
	return t.createCard(t.userFor(owner), name, limit, closingDay, dueDay)
}

func (t *testContext) createCard(userID uuid.UUID, name, limit string, closingDay, dueDay int) error {
	limitAmount, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit amount '%s': %w", limit, err)
	}

	cardID := uuid.New()
	t.currentCardID = cardID

	now := time.Now().UTC()
	card := &model.CreditCardModel{
		ID:          cardID,
		UserID:      userID,
		Name:        name,
		LimitAmount: limitAmount,
		ClosingDay:  closingDay,
		DueDay:      dueDay,
		Color:       "#6366F1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(card).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		Color:     "#6366F1",
		Icon:      "tag",
		Profile:   "personal",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(category).Error
}

func (t *testContext) aTransactionExistsDated(status, txnType, amount, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	return t.createTransaction(status, txnType, amount, day)
}

func (t *testContext) aTransactionExistsDatedThisMonth(status, txnType, amount string) error {
	return t.createTransaction(status, txnType, amount, time.Now().UTC())
}

func (t *testContext) aTransactionExistsDatedTwoMonthsAgo(status, txnType, amount string) error {
	return t.createTransaction(status, txnType, amount, time.Now().UTC().AddDate(0, -2, 0))
}

func (t *testContext) createTransaction(status, txnType, amount string, date time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transaction := &model.TransactionModel{
		ID:            transactionID,
		UserID:        t.currentUserID,
		Description:   "Fixture transaction",
		Amount:        value,
		Type:          txnType,
		Date:          valueobject.NormalizeToNoon(date),
		Status:        status,
		PaymentMethod: "pix",
		Profile:       "personal",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(transaction).Error
}
