package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"rentbill.app/billing/business/bill"
	"rentbill.app/billing/business/utilityconfig"
	"rentbill.app/billing/domain"
	"rentbill.app/billing/repository"
	"rentbill.app/billing/workflow"
)

var rentbillDB = sqldb.NewDatabase("rentbill", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

// Config is read from the environment when the service starts.
type Config struct {
	TemporalHost      string `env:"TEMPORAL_HOST" envDefault:"localhost:7233"`
	TemporalNamespace string `env:"TEMPORAL_NAMESPACE" envDefault:"default"`
	TaskQueue         string `env:"BILLING_TASK_QUEUE" envDefault:"rentbill-billing"`
	PaymentTermDays   int    `env:"BILLING_PAYMENT_TERM_DAYS" envDefault:"10"`
}

func (c Config) paymentTerm() time.Duration {
	return time.Duration(c.PaymentTermDays) * 24 * time.Hour
}

//encore:service
type Service struct {
	bills    bill.Business
	configs  utilityconfig.Business
	temporal client.Client
	worker   worker.Worker
	cfg      Config
}

func initService() (*Service, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse billing config: %w", err)
	}

	pgxdb := sqldb.Driver(rentbillDB)
	repo := repository.NewRepository(pgxdb)

	stateMachine := domain.NewBillStateMachine(pgxdb)
	billBusiness := bill.NewBillBusiness(repo.Bills, stateMachine)
	configBusiness := utilityconfig.NewUtilityConfigBusiness(repo.UtilityConfigs)

	rlog.Info("connecting to temporal", "host", cfg.TemporalHost, "namespace", cfg.TemporalNamespace)
	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(billBusiness)

	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillPayment)
	w.RegisterActivity(workflow.MarkOverdueActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		bills:    billBusiness,
		configs:  configBusiness,
		temporal: c,
		worker:   w,
		cfg:      cfg,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
	workflow.SetActivityDependencies(nil)
}
