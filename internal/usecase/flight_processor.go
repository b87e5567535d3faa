package usecase

import (
	"context"
	"errors"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"
	"flightwatch-service/pkg/retry"

	"github.com/google/uuid"
)

// ProcessSummary counts what one processing cycle did
type ProcessSummary struct {
	FlightsChecked       int `json:"flightsChecked"`
	RulesEvaluated       int `json:"rulesEvaluated"`
	ChangesDetected      int `json:"changesDetected"`
	NotificationsCreated int `json:"notificationsCreated"`
	EmailsSent           int `json:"emailsSent"`
	Failures             int `json:"failures"`
}

// FlightProcessor runs one processing cycle: refresh tracked flights from
// the provider, detect changes, evaluate direct alerts and rules, persist
// notifications and dispatch emails. Flights and rules are processed
// sequentially; every per-item failure is logged and counted without
// aborting the pass.
type FlightProcessor struct {
	flightRepo       repository.TrackedFlightRepository
	ruleRepo         repository.RuleRepository
	notificationRepo repository.NotificationRepository
	snapshotRepo     repository.SnapshotLogRepository
	provider         repository.FlightProvider
	emailSender      repository.EmailSender
	logger           logger.Logger
	metrics          *metrics.Metrics
	retryPolicy      retry.Policy
}

// NewFlightProcessor creates a new flight processor
func NewFlightProcessor(
	flightRepo repository.TrackedFlightRepository,
	ruleRepo repository.RuleRepository,
	notificationRepo repository.NotificationRepository,
	snapshotRepo repository.SnapshotLogRepository,
	provider repository.FlightProvider,
	emailSender repository.EmailSender,
	logger logger.Logger,
	metrics *metrics.Metrics,
	retryPolicy retry.Policy,
) *FlightProcessor {
	if retryPolicy.Retryable == nil {
		retryPolicy.Retryable = func(err error) bool {
			return !errors.Is(err, repository.ErrFlightNotFound)
		}
	}
	return &FlightProcessor{
		flightRepo:       flightRepo,
		ruleRepo:         ruleRepo,
		notificationRepo: notificationRepo,
		snapshotRepo:     snapshotRepo,
		provider:         provider,
		emailSender:      emailSender,
		logger:           logger,
		metrics:          metrics,
		retryPolicy:      retryPolicy,
	}
}

// ProcessCycle runs one full pass over direct alerts and rules
func (p *FlightProcessor) ProcessCycle(ctx context.Context) (*ProcessSummary, error) {
	start := time.Now()
	summary := &ProcessSummary{}

	p.processDirectAlerts(ctx, summary)
	p.processRules(ctx, summary)

	if p.metrics != nil {
		p.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}

	p.logger.Info("Processing cycle completed",
		"flightsChecked", summary.FlightsChecked,
		"rulesEvaluated", summary.RulesEvaluated,
		"changesDetected", summary.ChangesDetected,
		"notificationsCreated", summary.NotificationsCreated,
		"emailsSent", summary.EmailsSent,
		"failures", summary.Failures,
		"duration", time.Since(start).String())

	return summary, nil
}

// processDirectAlerts handles flights with active non-rule alerts
func (p *FlightProcessor) processDirectAlerts(ctx context.Context, summary *ProcessSummary) {
	flights, err := p.flightRepo.FindWithActiveDirectAlerts(ctx)
	if err != nil {
		p.logger.Error("Failed to load flights with direct alerts", "error", err)
		p.countError("load_flights")
		summary.Failures++
		return
	}

	p.logger.Info("Processing flights with direct alerts", "count", len(flights))

	for _, flight := range flights {
		summary.FlightsChecked++
		if p.metrics != nil {
			p.metrics.FlightsChecked.Inc()
		}

		changes, ok := p.refreshFlight(ctx, flight, summary)
		if !ok || len(changes) == 0 {
			continue
		}

		for _, match := range MatchAlerts(changes, flight.Alerts) {
			p.notifyDirect(ctx, flight, match, summary)
		}
	}
}

// processRules handles active rules and their grouped alerts
func (p *FlightProcessor) processRules(ctx context.Context, summary *ProcessSummary) {
	rules, err := p.ruleRepo.FindActive(ctx)
	if err != nil {
		p.logger.Error("Failed to load active rules", "error", err)
		p.countError("load_rules")
		summary.Failures++
		return
	}

	p.logger.Info("Processing active rules", "count", len(rules))

	for _, rule := range rules {
		summary.RulesEvaluated++
		if p.metrics != nil {
			p.metrics.RulesEvaluated.Inc()
		}
		p.processRule(ctx, rule, summary)
	}
}

func (p *FlightProcessor) processRule(ctx context.Context, rule *entity.Rule, summary *ProcessSummary) {
	flightData := make(map[uuid.UUID]entity.FlightContext)

	for _, flightID := range ruleFlightIDs(rule) {
		flight, err := p.flightRepo.FindByID(ctx, flightID)
		if err != nil {
			p.logger.Warn("Referenced flight not found, condition will not match",
				"rule", rule.Name, "flightId", flightID, "error", err)
			continue
		}

		changes, ok := p.refreshFlight(ctx, flight, summary)
		if !ok {
			continue
		}

		flightData[flight.ID] = entity.FlightContext{Flight: flight, Changes: changes}
	}

	result := EvaluateRule(*rule, flightData)
	if !result.Satisfied {
		return
	}

	p.logger.Info("Rule satisfied",
		"rule", rule.Name,
		"operator", rule.Operator,
		"matchedConditions", len(result.MatchedConditionIDs))

	for _, alert := range rule.Alerts {
		if !alert.Active {
			continue
		}
		fc, ok := flightData[alert.FlightID]
		if !ok {
			p.logger.Warn("Rule alert references unresolved flight, skipping",
				"rule", rule.Name, "alertId", alert.ID, "flightId", alert.FlightID)
			continue
		}
		p.notifyRule(ctx, rule, alert, fc, summary)
	}
}

// refreshFlight fetches the latest snapshot, archives it, detects changes
// and persists the updated state. The second return value is false when
// this flight's cycle contribution must be skipped.
func (p *FlightProcessor) refreshFlight(ctx context.Context, flight *entity.TrackedFlight, summary *ProcessSummary) ([]entity.Change, bool) {
	snapshot, err := p.fetchSnapshot(ctx, flight.FlightNumber)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			p.logger.Warn("No provider data for flight, skipping", "flightNumber", flight.FlightNumber)
			return nil, false
		}
		p.logger.Error("Failed to fetch flight snapshot",
			"flightNumber", flight.FlightNumber, "error", err)
		p.countError("fetch_snapshot")
		summary.Failures++
		return nil, false
	}

	changes := DetectChanges(flight, snapshot)
	if len(changes) == 0 {
		return nil, true
	}

	summary.ChangesDetected += len(changes)
	for _, change := range changes {
		if p.metrics != nil {
			p.metrics.ChangesDetected.WithLabelValues(string(change.Type)).Inc()
		}
		p.logger.Info("Flight change detected",
			"flightNumber", flight.FlightNumber,
			"type", change.Type)
	}

	flight.ApplySnapshot(snapshot)
	err = p.retryPolicy.Do(ctx, func() error {
		return p.flightRepo.UpdateState(ctx, flight)
	})
	if err != nil {
		// Evaluation continues against the in-memory state; the stale row
		// will re-detect the same changes next cycle.
		p.logger.Error("Failed to persist flight state",
			"flightNumber", flight.FlightNumber, "error", err)
		p.countError("update_flight")
		summary.Failures++
	}

	return changes, true
}

func (p *FlightProcessor) fetchSnapshot(ctx context.Context, flightNumber string) (*entity.FlightSnapshot, error) {
	var snapshot *entity.FlightSnapshot
	err := p.retryPolicy.Do(ctx, func() error {
		s, err := p.provider.FetchSnapshot(ctx, flightNumber)
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.snapshotRepo != nil {
		if err := p.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
			p.logger.Error("Failed to archive snapshot",
				"flightNumber", flightNumber, "error", err)
			p.countError("archive_snapshot")
		}
	}

	return snapshot, nil
}

func (p *FlightProcessor) notifyDirect(ctx context.Context, flight *entity.TrackedFlight, match AlertMatch, summary *ProcessSummary) {
	title := ComposeTitle(match.Change.Type)
	message := ComposeChangeMessage(flight.FlightNumber, match.Change)

	notification := &entity.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      string(match.Alert.Type),
		UserID:    match.Alert.UserID,
		FlightID:  flight.ID,
		CreatedAt: time.Now(),
	}

	var recipient string
	if flight.User != nil {
		recipient = flight.User.Email
	}
	p.deliver(ctx, notification, recipient, summary)
}

func (p *FlightProcessor) notifyRule(ctx context.Context, rule *entity.Rule, alert entity.Alert, fc entity.FlightContext, summary *ProcessSummary) {
	title := ComposeRuleTitle(rule.Name)
	message := ComposeRuleMessage(rule.Name, fc.Flight.FlightNumber, changeForAlert(alert.Type, fc.Changes))

	notification := &entity.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      string(alert.Type),
		UserID:    rule.UserID,
		FlightID:  alert.FlightID,
		RuleID:    &rule.ID,
		CreatedAt: time.Now(),
	}

	var recipient string
	if rule.User != nil {
		recipient = rule.User.Email
	}
	p.deliver(ctx, notification, recipient, summary)
}

// deliver persists the notification, then attempts the email. Email
// failure is logged only; the notification row stays (at-least-once).
func (p *FlightProcessor) deliver(ctx context.Context, notification *entity.Notification, recipient string, summary *ProcessSummary) {
	err := p.retryPolicy.Do(ctx, func() error {
		return p.notificationRepo.Create(ctx, notification)
	})
	if err != nil {
		p.logger.Error("Failed to create notification",
			"title", notification.Title, "userId", notification.UserID, "error", err)
		p.countError("create_notification")
		summary.Failures++
		return
	}

	summary.NotificationsCreated++
	if p.metrics != nil {
		p.metrics.NotificationsCreated.Inc()
	}

	if recipient == "" {
		p.logger.Warn("No email recipient for notification",
			"notificationId", notification.ID, "userId", notification.UserID)
		return
	}

	subject, htmlBody, textBody := ComposeEmail(notification.Title, notification.Message)
	messageID, err := p.emailSender.SendNotificationEmail(ctx, recipient, subject, htmlBody, textBody)
	if err != nil {
		p.logger.Error("Failed to send notification email",
			"notificationId", notification.ID, "to", recipient, "error", err)
		p.countError("send_email")
		return
	}

	summary.EmailsSent++
	if p.metrics != nil {
		p.metrics.EmailsSent.Inc()
	}
	p.logger.Info("Notification email sent",
		"notificationId", notification.ID, "messageId", messageID, "to", recipient)
}

func (p *FlightProcessor) countError(operation string) {
	if p.metrics != nil {
		p.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// ruleFlightIDs returns the distinct flight ids referenced by a rule's
// conditions and alerts, in first-seen order.
func ruleFlightIDs(rule *entity.Rule) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID

	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, cond := range rule.Conditions {
		add(cond.FlightID)
	}
	for _, alert := range rule.Alerts {
		add(alert.FlightID)
	}

	return ids
}

// changeForAlert picks the first change matching the alert's type, if any
func changeForAlert(alertType entity.AlertType, changes []entity.Change) *entity.Change {
	for i := range changes {
		if string(changes[i].Type) == string(alertType) {
			return &changes[i]
		}
	}
	return nil
}
