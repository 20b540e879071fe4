// Package wire provides dependency injection for the permitflow application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/permitflow/internal/adapters/cli"
	"github.com/example/permitflow/internal/adapters/sqlite"
	"github.com/example/permitflow/internal/app"
	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/db"
	"github.com/example/permitflow/internal/logging"
	"github.com/example/permitflow/internal/ports/primary"
)

var (
	recordService     primary.RecordService
	fieldService      primary.FieldService
	contactService    primary.ContactService
	inspectionService primary.InspectionService
	expiryService     primary.ExpiryService
	auditService      primary.AuditService
	debug             bool
	once              sync.Once
)

// SetDebug turns on debug logging. It must be called before the first
// service is requested.
func SetDebug(enabled bool) {
	debug = enabled
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, debug)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	logger.Debug().Str("path", cfg.DBPath).Msg("database ready")

	// Repositories share one audit writer so every mutation lands in audit_log.
	auditRepo := sqlite.NewAuditLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(auditRepo)
	recordRepo := sqlite.NewRecordRepository(database, logWriter)
	fieldRepo := sqlite.NewCustomFieldRepository(database, logWriter)
	contactRepo := sqlite.NewContactRepository(database, logWriter)
	inspectionRepo := sqlite.NewInspectionRepository(database, logWriter)
	outbox := sqlite.NewOutboxRepository(database)

	fieldService = app.NewFieldService(recordRepo, fieldRepo, cfg, logger)
	contactService = app.NewContactService(recordRepo, contactRepo, cfg, logger)
	recordService = app.NewRecordService(recordRepo, fieldRepo, fieldService, contactService, cfg, logger)
	inspectionService = app.NewInspectionService(recordRepo, contactRepo, inspectionRepo, outbox, cfg, nil, logger)
	expiryService = app.NewExpiryService(recordRepo, cfg, nil, logger)
	auditService = app.NewAuditService(auditRepo)
}

// RecordAdapter returns a new RecordAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func RecordAdapter() *cliadapter.RecordAdapter {
	return RecordAdapterWithOutput(os.Stdout)
}

// RecordAdapterWithOutput returns a new RecordAdapter writing to the given output.
func RecordAdapterWithOutput(out io.Writer) *cliadapter.RecordAdapter {
	once.Do(initServices)
	return cliadapter.NewRecordAdapter(recordService, out)
}

// FieldAdapter returns a new FieldAdapter writing to stdout.
func FieldAdapter() *cliadapter.FieldAdapter {
	return FieldAdapterWithOutput(os.Stdout)
}

// FieldAdapterWithOutput returns a new FieldAdapter writing to the given output.
func FieldAdapterWithOutput(out io.Writer) *cliadapter.FieldAdapter {
	once.Do(initServices)
	return cliadapter.NewFieldAdapter(fieldService, out)
}

// ContactAdapter returns a new ContactAdapter writing to stdout.
func ContactAdapter() *cliadapter.ContactAdapter {
	return ContactAdapterWithOutput(os.Stdout)
}

// ContactAdapterWithOutput returns a new ContactAdapter writing to the given output.
func ContactAdapterWithOutput(out io.Writer) *cliadapter.ContactAdapter {
	once.Do(initServices)
	return cliadapter.NewContactAdapter(contactService, out)
}

// InspectionAdapter returns a new InspectionAdapter writing to stdout.
func InspectionAdapter() *cliadapter.InspectionAdapter {
	return InspectionAdapterWithOutput(os.Stdout)
}

// InspectionAdapterWithOutput returns a new InspectionAdapter writing to the given output.
func InspectionAdapterWithOutput(out io.Writer) *cliadapter.InspectionAdapter {
	once.Do(initServices)
	return cliadapter.NewInspectionAdapter(inspectionService, out)
}

// ExpiryAdapter returns a new ExpiryAdapter writing to stdout.
func ExpiryAdapter() *cliadapter.ExpiryAdapter {
	return ExpiryAdapterWithOutput(os.Stdout)
}

// ExpiryAdapterWithOutput returns a new ExpiryAdapter writing to the given output.
func ExpiryAdapterWithOutput(out io.Writer) *cliadapter.ExpiryAdapter {
	once.Do(initServices)
	return cliadapter.NewExpiryAdapter(expiryService, out)
}

// AuditAdapter returns a new AuditAdapter writing to stdout.
func AuditAdapter() *cliadapter.AuditAdapter {
	return AuditAdapterWithOutput(os.Stdout)
}

// AuditAdapterWithOutput returns a new AuditAdapter writing to the given output.
func AuditAdapterWithOutput(out io.Writer) *cliadapter.AuditAdapter {
	once.Do(initServices)
	return cliadapter.NewAuditAdapter(auditService, out)
}
