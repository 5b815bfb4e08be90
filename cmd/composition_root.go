package cmd

import (
	"log"

	"fulfillment/internal/adapters/out/csvexport"
	"fulfillment/internal/adapters/out/notification"
	"fulfillment/internal/adapters/out/payment"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/settlement"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB *gorm.DB

	orderStore       ports.OrderStore
	fileExporter     ports.FileExporter
	settlementClient ports.SettlementClient
	shipmentRepo     ports.ShipmentRepository
	inventoryChecker ports.InventoryChecker
	paymentProcessor ports.PaymentProcessor
	notifier         ports.Notifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	fileExporter, err := csvexport.NewCSVFileExporter(config.ExportDir, kernel.NewSystemClock())
	if err != nil {
		log.Fatalf("Error creating file exporter: %v", err)
	}

	settlementClient, err := settlement.NewClient(config.SettlementBaseURL)
	if err != nil {
		log.Fatalf("Error creating settlement client: %v", err)
	}

	paymentProcessor, err := payment.NewClient(config.PaymentBaseURL)
	if err != nil {
		log.Fatalf("Error creating payment client: %v", err)
	}

	notifier, err := notification.NewKafkaNotifier([]string{config.KafkaHost}, config.KafkaNotificationsTopic)
	if err != nil {
		log.Fatalf("Error creating notifier: %v", err)
	}

	return CompositionRoot{
		gormDB:           gormDB,
		orderStore:       orderrepo.NewGormOrderStore(gormDB),
		fileExporter:     fileExporter,
		settlementClient: settlementClient,
		shipmentRepo:     shipmentrepo.NewGormShipmentRepository(gormDB),
		inventoryChecker: inventoryrepo.NewGormInventoryChecker(gormDB),
		paymentProcessor: paymentProcessor,
		notifier:         notifier,
	}
}

func (c *CompositionRoot) OrderStore() ports.OrderStore {
	return c.orderStore
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	return commands.NewProcessOrdersCommandHandler(c.orderStore, c.fileExporter, c.settlementClient)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	return commands.NewFulfillOrderCommandHandler(c.shipmentRepo, c.inventoryChecker, c.paymentProcessor, c.notifier)
}

func (c *CompositionRoot) CreateGetUnprocessedOrdersQueryHandler() queries.GetUnprocessedOrdersQueryHandler {
	return queries.NewGetUnprocessedOrdersQueryHandler(c.gormDB)
}
