package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/assignmentrepo"
	"canteen/internal/adapters/out/postgres/courierrepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/assignment"
	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, couriers, assignments").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.CourierRepository(), "First instance should provide courier repository")
	suite.NotNil(uow1.AssignmentRepository(), "First instance should provide assignment repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.CourierRepository(), "Second instance should provide courier repository")
	suite.NotNil(uow2.AssignmentRepository(), "Second instance should provide assignment repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(sessionKey(time.Now()))

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_SessionAssignmentWorkflow runs the whole courier assignment
// write set in one transaction: ledger insert, order transitions, and the
// courier's assignment counter.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SessionAssignmentWorkflow() {
	ctx := context.Background()
	ts := sessionKey(time.Now())

	// Seed a ready session and an active courier outside the transaction
	seedUow := suite.factory.Create()
	first := suite.createReadyOrder(ts)
	second := suite.createReadyOrder(ts)
	testCourier := createActiveCourier()

	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(seedUow.CourierRepository().Add(ctx, testCourier))

	// Assign the session atomically
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	now := time.Now().UTC().Truncate(time.Microsecond)
	records := make([]*assignment.Assignment, 0, 2)
	for _, o := range []*order.Order{first, second} {
		record, err := assignment.NewAssignment(o.ID(), testCourier.ID(), now)
		suite.Require().NoError(err)
		records = append(records, record)
	}

	suite.Require().NoError(uow.AssignmentRepository().AddBatch(ctx, records))

	affected, err := uow.OrderRepository().BulkUpdateStatus(
		ctx, []kernel.UUID{first.ID(), second.ID()}, order.OutForDelivery)
	suite.Require().NoError(err)
	suite.Equal(2, affected)

	suite.Require().NoError(uow.CourierRepository().IncrementAssigned(ctx, testCourier.ID(), 2, now))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the committed write set
	verifyUow := suite.factory.Create()

	retrievedOrder, err := verifyUow.OrderRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrievedOrder.Status())

	retrievedCourier, err := verifyUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrievedCourier.TotalAssigned())
	suite.Require().NotNil(retrievedCourier.LastAssignedAt())

	record, err := verifyUow.AssignmentRepository().GetByOrder(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Equal(testCourier.ID(), record.CourierID())
}

// TestUnitOfWork_DuplicateAssignment_RejectedByLedger verifies the ledger's
// uniqueness constraint stops a second transaction assigning the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateAssignment_RejectedByLedger() {
	ctx := context.Background()
	ts := sessionKey(time.Now())

	seedUow := suite.factory.Create()
	testOrder := suite.createReadyOrder(ts)
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, testOrder))

	now := time.Now().UTC()

	// First assignment wins
	winner, err := assignment.NewAssignment(testOrder.ID(), kernel.NewUUID(), now)
	suite.Require().NoError(err)

	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow1.AssignmentRepository().AddBatch(ctx, []*assignment.Assignment{winner}))
	suite.Require().NoError(uow1.Commit(ctx))

	// Second assignment for the same order conflicts and rolls back
	loser, err := assignment.NewAssignment(testOrder.ID(), kernel.NewUUID(), now)
	suite.Require().NoError(err)

	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))

	err = uow2.AssignmentRepository().AddBatch(ctx, []*assignment.Assignment{loser})
	suite.Require().ErrorIs(err, errs.ErrPersistenceConflict)
	suite.Require().NoError(uow2.Rollback(ctx))

	// The winning courier still owns the order
	verifyUow := suite.factory.Create()
	record, err := verifyUow.AssignmentRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(winner.CourierID(), record.CourierID())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(sessionKey(time.Now()))
	testCourier := createActiveCourier()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(sessionKey(time.Now()))
	order2 := createTestOrder(sessionKey(time.Now().Add(-time.Hour)))

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(sessionKey(time.Now()))

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// sessionKey converts a checkout time into the batch key shared by the session's orders.
func sessionKey(at time.Time) int64 {
	return at.UnixMilli()
}

// createTestOrder creates a valid pending delivery order for testing purposes.
func createTestOrder(sessionTs int64) *order.Order {
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		sessionTs,
		"Pelmeni",
		1,
		550,
		order.Delivery,
		"Dorm 1, room 12",
		time.Now().UTC().Add(5*time.Minute),
	)
	return testOrder
}

// createReadyOrder creates a delivery order advanced to kitchen-ready status.
func (suite *UnitOfWorkIntegrationTestSuite) createReadyOrder(sessionTs int64) *order.Order {
	testOrder := createTestOrder(sessionTs)
	suite.Require().NoError(testOrder.Place())
	suite.Require().NoError(testOrder.StartCooking())
	suite.Require().NoError(testOrder.MarkReady())
	return testOrder
}

// createActiveCourier creates a valid on-shift courier for testing purposes.
func createActiveCourier() *courier.Courier {
	testCourier, _ := courier.NewCourier(kernel.NewUUID(), "Test Courier")
	testCourier.Activate()
	return testCourier
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
