package app

import (
	"fmt"
	"log"
	"time"

	"trailercraft-co/app/controller"
	"trailercraft-co/app/router"
	"trailercraft-co/catalog"
	"trailercraft-co/config"
	"trailercraft-co/configurator"
	"trailercraft-co/db"
	"trailercraft-co/pricing"
	"trailercraft-co/repository"
	"trailercraft-co/service"
)

// Initialize wires the application together: database, option catalogs, the
// configurator engine, services and routes.
func Initialize(cfg *config.Config) error {
	// Initialize database connection
	if err := db.InitDB(cfg.Database.DSN()); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Load option catalogs once; everything downstream receives them explicitly
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load option catalog: %w", err)
	}

	// Configurator engine
	validator := configurator.NewValidator(cat)
	calculator := pricing.NewCalculator(cat, cfg.Pricing.TaxRate)

	// Repositories
	quoteRepo := repository.NewQuoteRequestRepository()

	// Services
	quoteService := service.NewQuoteService(quoteRepo, cat, cfg.Server.BaseURL)
	notifyService := service.NewNotifyService(cfg.CRM.WebhookURL, time.Duration(cfg.CRM.Timeout)*time.Second)

	var driveService service.DriveServiceInterface
	if cfg.Drive.CredentialsPath != "" && cfg.Drive.FolderID != "" {
		ds, err := service.NewDriveService(cfg.Drive.CredentialsPath, cfg.Drive.FolderID)
		if err != nil {
			return fmt.Errorf("failed to initialize drive service: %w", err)
		}
		driveService = ds
	} else {
		log.Printf("⚠️  Drive upload disabled (credentials or folder not configured)")
	}

	var pdfGenerator service.PDFGenerator
	if driveService != nil {
		pdfGenerator = quoteService
	}
	submissionService := service.NewSubmissionService(quoteRepo, notifyService, pdfGenerator, driveService)

	attachmentService := service.NewAttachmentService(cfg.Uploads.Dir)
	if err := attachmentService.EnsureDir(); err != nil {
		return err
	}

	// Session store
	store := configurator.NewStore(validator, calculator, submissionService)

	// Create controllers
	controllers := &router.Controllers{
		Configurator: controller.NewConfiguratorController(store, cat, attachmentService, cfg.Uploads.MaxSizeBytes),
		QuoteRequest: controller.NewQuoteRequestController(quoteRepo, quoteService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
