// Package reconciler runs the recurring sweep that advances loan and fine
// state and fires the reminder mail. Each cycle runs its phases in order;
// a phase failing is logged and the next phase still runs, so one bad record
// or a down mail provider never halts nightly reconciliation.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/mailer"
	"github.com/cecyt19/biblioteca/pkg/businessdays"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	dueSoonWindow  = 3 // business days ahead that trigger a reminder
	defaultSenders = 10
)

type Ledger interface {
	MarkOverdue(ctx context.Context) (int, error)
	ListOpen(ctx context.Context) ([]domain.Loan, error)
}

type Fines interface {
	Reconcile(ctx context.Context) error
	// ListPending refreshes accrual as a side effect, which is exactly what
	// the reminder phase needs before quoting amounts.
	ListPending(ctx context.Context) ([]domain.Fine, error)
}

type SiteLog interface {
	EnforceRetention(ctx context.Context) (int, error)
}

type Service struct {
	ledger   Ledger
	fines    Fines
	site     SiteLog
	notifier mailer.Notifier
	senders  SenderPool
	loc      *time.Location

	interval     time.Duration
	initialDelay time.Duration
	now          func() time.Time
}

func New(ledger Ledger, fines Fines, site SiteLog, notifier mailer.Notifier, loc *time.Location, interval, initialDelay time.Duration) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		ledger:       ledger,
		fines:        fines,
		site:         site,
		notifier:     notifier,
		senders:      NewMailPool(defaultSenders),
		loc:          loc,
		interval:     interval,
		initialDelay: initialDelay,
		now:          time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("reconciler started",
		zap.Duration("interval", s.interval), zap.Duration("initialDelay", s.initialDelay))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.initialDelay):
	}
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle. Exported so tests and
// operational tooling can drive a cycle synchronously instead of waiting on
// the ticker.
func (s *Service) RunOnce(ctx context.Context) {
	phases := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"mark-overdue", s.markOverdue},
		{"reconcile-fines", s.reconcileFines},
		{"due-soon-reminders", s.sendDueSoonReminders},
		{"fine-reminders", s.sendFineReminders},
		{"site-retention", s.enforceRetention},
	}
	for _, phase := range phases {
		if err := phase.fn(ctx); err != nil {
			zap.L().Error("reconciliation phase failed", zap.String("phase", phase.name), zap.Error(err))
		}
	}
}

func (s *Service) markOverdue(ctx context.Context) error {
	_, err := s.ledger.MarkOverdue(ctx)
	return err
}

func (s *Service) reconcileFines(ctx context.Context) error {
	return s.fines.Reconcile(ctx)
}

func dueSoonSubject(daysLeft int) (string, string) {
	switch daysLeft {
	case 0:
		return "Tu préstamo vence hoy", "vence hoy"
	case 1:
		return "Tu préstamo vence mañana", "vence mañana"
	default:
		return fmt.Sprintf("Tu préstamo vence en %d días hábiles", daysLeft),
			fmt.Sprintf("vence en %d días hábiles", daysLeft)
	}
}

func (s *Service) sendDueSoonReminders(ctx context.Context) error {
	loans, err := s.ledger.ListOpen(ctx)
	if err != nil {
		return err
	}

	today := businessdays.Truncate(s.now().In(s.loc))
	var g errgroup.Group
	for _, loan := range loans {
		due := businessdays.Civil(loan.DueDate, s.loc)
		if loan.Status != domain.LoanActive || loan.Email == "" || due.Before(today) {
			continue
		}
		daysLeft := businessdays.CountBetween(today, due)
		if daysLeft > dueSoonWindow {
			continue
		}

		loan := loan
		subject, phrase := dueSoonSubject(daysLeft)
		body := fmt.Sprintf(
			"Hola %s,\n\nTu préstamo del libro \"%s\" %s (%s).\nPor favor pasa a la biblioteca a devolverlo o renovarlo.\n\nBiblioteca CECyT 19",
			loan.BorrowerName, loan.Title, phrase, loan.DueDate.Format("2006-01-02"),
		)
		g.Go(func() error {
			return s.senders.Enqueue(ctx, func() error {
				s.notifier.Send(ctx, loan.Email, subject, body)
				return nil
			})
		})
	}
	return g.Wait()
}

func (s *Service) sendFineReminders(ctx context.Context) error {
	// ListPending recomputes days and amounts before we quote them.
	fines, err := s.fines.ListPending(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, fine := range fines {
		if fine.Email == "" {
			continue
		}

		fine := fine
		subject := fmt.Sprintf("Multa pendiente: %d días hábiles de retraso", fine.DelinquentDays)
		body := fmt.Sprintf(
			"Hola %s,\n\nEl libro \"%s\" debió devolverse el %s. Llevas %d días hábiles de retraso y tu multa acumulada es de $%.2f.\nPasa a la biblioteca para regularizar tu préstamo.\n\nBiblioteca CECyT 19",
			fine.BorrowerName, fine.ItemTitle, fine.DueDate.Format("2006-01-02"),
			fine.DelinquentDays, fine.Amount,
		)
		g.Go(func() error {
			return s.senders.Enqueue(ctx, func() error {
				s.notifier.Send(ctx, fine.Email, subject, body)
				return nil
			})
		})
	}
	return g.Wait()
}

func (s *Service) enforceRetention(ctx context.Context) error {
	_, err := s.site.EnforceRetention(ctx)
	return err
}
